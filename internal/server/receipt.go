package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
)

func (s *Server) ListReceipts(c *gin.Context) {
	req := receiptdomain.ListReceiptRequest{
		CustomerID: c.Query("customerId"),
		Limit:      parseIntDefault(c.Query("limit"), 50),
		Offset:     parseIntDefault(c.Query("offset"), 0),
	}

	receipts, err := s.receiptSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipts)
}

func (s *Server) GetReceiptByID(c *gin.Context) {
	receipt, err := s.receiptSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (s *Server) CreateReceipt(c *gin.Context) {
	var req receiptdomain.IssueReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	resp, err := s.receiptSvc.Issue(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) DownloadReceiptPDF(c *gin.Context) {
	doc, err := s.receiptSvc.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "Receipt-"+doc.ReceiptNumber+".pdf"))
	c.Data(http.StatusOK, "application/pdf", doc.Document)
}

func (s *Server) ListReceiptsByCustomer(c *gin.Context) {
	receipts, err := s.receiptSvc.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipts)
}
