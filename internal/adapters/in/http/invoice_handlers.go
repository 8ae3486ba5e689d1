package http

import (
	"fmt"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/billing"

	"github.com/labstack/echo/v4"
)

type regenerateInvoiceRequest struct {
	Items         []billing.Line         `json:"items"`
	SplitPayments []billing.SplitPayment `json:"splitPayments"`
}

// GetInvoices handles GET /api/invoices.
func (s *Server) GetInvoices(ctx echo.Context) error {
	invoices, err := s.queries.Invoices.Handle(ctx.Request().Context(), queries.NewGetInvoicesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /api/invoices/:id.
func (s *Server) GetInvoice(ctx echo.Context) error {
	inv, err := s.invoiceByID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, inv)
}

// GetInvoiceByNumber handles GET /api/invoices/number/:invoiceNumber.
func (s *Server) GetInvoiceByNumber(ctx echo.Context) error {
	query, err := queries.NewGetInvoiceByNumberQuery(ctx.Param("invoiceNumber"))
	if err != nil {
		return s.fail(ctx, err)
	}
	inv, err := s.queries.Invoice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, inv)
}

// RegenerateInvoice handles POST /api/invoices/:id/regenerate. Omitted
// split payments keep the stored ones.
func (s *Server) RegenerateInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req regenerateInvoiceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegenerateInvoiceCommand(invoiceID, req.Items, req.SplitPayments)
	if err != nil {
		return s.fail(ctx, err)
	}
	inv, err := s.commands.RegenerateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewInvoice(inv))
}

// GetInvoicePDF handles GET /api/invoices/:id/pdf.
func (s *Server) GetInvoicePDF(ctx echo.Context) error {
	if s.renderer == nil {
		return ctx.JSON(http.StatusNotImplemented, Error{Code: http.StatusNotImplemented, Message: "Invoice printing is not configured"})
	}
	inv, err := s.invoiceByID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	doc, err := s.renderer.Render(inv)
	if err != nil {
		return s.fail(ctx, fmt.Errorf("render invoice %s: %w", inv.InvoiceNumber, err))
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", inv.InvoiceNumber+".pdf"))
	return ctx.Blob(http.StatusOK, "application/pdf", doc)
}

func (s *Server) invoiceByID(ctx echo.Context) (views.Invoice, error) {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return views.Invoice{}, err
	}
	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return views.Invoice{}, err
	}
	return s.queries.Invoice.Handle(ctx.Request().Context(), query)
}
