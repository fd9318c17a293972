package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// DocumentHandler handles HTTP requests for compliance documents.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List handles GET /api/documents. Filters combine with AND.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        shop_id        query     int     false  "Shop ID"
// @Param        employee_id    query     int     false  "Employee ID"
// @Param        document_type  query     string  false  "Document type name"
// @Param        status         query     string  false  "active, expired or inactive"
// @Success      200            {array}   domain.Document
// @Failure      400            {object}  errorResponse
// @Router       /documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	var filter domain.DocumentFilter
	err := echo.QueryParamsBinder(c).
		Int64("shop_id", &filter.ShopID).
		Int64("employee_id", &filter.EmployeeID).
		String("document_type", &filter.DocumentType).
		String("status", &filter.Status).
		BindError()
	if err != nil {
		return invalidQuery(err)
	}

	docs, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Types handles GET /api/documents/types/list.
//
// @Summary      List document types
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.DocumentType
// @Router       /documents/types/list [get]
func (h *DocumentHandler) Types(c echo.Context) error {
	types, err := h.service.ListTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// Stats handles GET /api/documents/stats/summary.
//
// @Summary      Document statistics
// @Description  overdue_documents counts every document whose expiry date has passed, whatever its status.
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        shop_id  query     int  false  "Restrict to one shop"
// @Success      200      {object}  domain.DocumentStats
// @Failure      400      {object}  errorResponse
// @Router       /documents/stats/summary [get]
func (h *DocumentHandler) Stats(c echo.Context) error {
	var shopID int64
	if err := echo.QueryParamsBinder(c).Int64("shop_id", &shopID).BindError(); err != nil {
		return invalidQuery(err)
	}

	stats, err := h.service.StatsSummary(c.Request().Context(), shopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get handles GET /api/documents/:id.
//
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  errorResponse
// @Router       /documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	doc, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Create handles POST /api/documents.
//
// @Summary      Create a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Replays the original response for a repeated key"
// @Param        body             body      documentRequest  true   "Document details"
// @Success      201              {object}  domain.Document
// @Failure      400              {object}  errorResponse
// @Router       /documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	var req documentRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	in, err := documentInput(req)
	if err != nil {
		return err
	}
	in.IdempotencyKey = idempotencyKey(c)

	doc, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	countMutation(domain.EntityDocument, domain.AuditCreate)
	return c.JSON(http.StatusCreated, doc)
}

// Update handles PUT /api/documents/:id. The file payload is replaced too.
//
// @Summary      Replace a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Document ID"
// @Param        body  body      documentRequest  true  "Document details"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /documents/{id} [put]
func (h *DocumentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req documentRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	in, err := documentInput(req)
	if err != nil {
		return err
	}

	doc, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	countMutation(domain.EntityDocument, domain.AuditUpdate)
	return c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/documents/:id.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(domain.EntityDocument, domain.AuditDelete)
	return c.JSON(http.StatusOK, messageResponse{Message: "document deleted successfully"})
}

func documentInput(req documentRequest) (ports.DocumentInput, error) {
	issued, err := optionalDate("issue_date", req.IssueDate)
	if err != nil {
		return ports.DocumentInput{}, err
	}
	expires, err := optionalDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return ports.DocumentInput{}, err
	}
	return ports.DocumentInput{
		ShopID:         req.ShopID,
		EmployeeID:     req.EmployeeID,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Title:          req.Title,
		Description:    req.Description,
		IssueDate:      issued,
		ExpiryDate:     expires,
		Status:         req.Status,
		FileData:       req.FileData,
		FileName:       req.FileName,
		FileType:       req.FileType,
		Notes:          req.Notes,
	}, nil
}
