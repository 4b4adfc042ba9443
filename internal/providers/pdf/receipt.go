package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type marotoProvider struct{}

func New() Provider {
	return &marotoProvider{}
}

func (p *marotoProvider) GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Company header
	m.AddRow(24,
		col.New(12).Add(
			text.New(data.CompanyName, props.Text{Size: 14, Style: fontstyle.Bold}),
			text.New(data.CompanyAddress, props.Text{Top: 7, Size: 9}),
			text.New(data.CompanyPhone+"  "+data.CompanyEmail, props.Text{Top: 12, Size: 9}),
		),
	)

	m.AddRow(12,
		text.NewCol(12, "RECEIPT", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(3, line.NewCol(12))

	// Receipt details and payment details side by side
	m.AddRow(28,
		col.New(6).Add(
			text.New("Receipt number: "+data.ReceiptNumber, props.Text{Top: 0, Size: 10}),
			text.New("Issue date: "+data.IssueDate, props.Text{Top: 6, Size: 10}),
			text.New("Received from: "+data.CustomerName, props.Text{Top: 12, Size: 10}),
			text.New(invoiceLine(data.InvoiceNumber), props.Text{Top: 18, Size: 10}),
		),
		col.New(6).Add(
			text.New("Payment method: "+data.PaymentMethod, props.Text{Top: 0, Size: 10}),
			text.New("Payment date: "+data.PaymentDate, props.Text{Top: 6, Size: 10}),
		),
	)

	m.AddRow(16,
		col.New(6),
		col.New(6).Add(
			text.New("Amount paid", props.Text{Size: 10, Align: align.Right}),
			text.New(data.AmountPaid, props.Text{Top: 6, Size: 14, Style: fontstyle.Bold, Align: align.Right}),
		),
	)

	if data.Notes != "" {
		m.AddRow(12,
			col.New(12).Add(
				text.New("Notes", props.Text{Size: 9, Style: fontstyle.Bold}),
				text.New(data.Notes, props.Text{Top: 5, Size: 9}),
			),
		)
	}

	m.AddRow(10,
		text.NewCol(12, "This receipt confirms payment received. No signature required.", props.Text{
			Size:  8,
			Align: align.Center,
			Color: &props.Color{Red: 120, Green: 120, Blue: 120},
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func invoiceLine(number string) string {
	if number == "" {
		return "Invoice: -"
	}
	return "Invoice: " + number
}
