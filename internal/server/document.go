package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	documentdomain "github.com/ketukakahala/rentalops/internal/document/domain"
)

func (s *Server) ListDocuments(c *gin.Context) {
	documents, err := s.documentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

func (s *Server) CreateDocument(c *gin.Context) {
	var req documentdomain.Document
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	document, err := s.documentSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

func (s *Server) DeleteDocument(c *gin.Context) {
	if err := s.documentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
