package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"obiene/quotation_backend/internal/domain/quotation"
)

// Item form values arrive as strings; the session parses and validates
// them the same way regardless of which frontend submitted the form.
type itemRequest struct {
	Description string `json:"description" validate:"required"`
	UnitCost    string `json:"unit_cost" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
}

type clientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type companyView struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FooterText string `json:"footer_text"`
	ThemeColor string `json:"theme_color"`
	HasLogo    bool   `json:"has_logo"`
}

type sessionResponse struct {
	Items           []quotation.LineItem `json:"items"`
	ClientInfo      quotation.ClientInfo `json:"client_info"`
	CompanyInfo     companyView          `json:"company_info"`
	Total           float64              `json:"total"`
	NextQuoteNumber string               `json:"next_quote_number"`
	EditingIndex    *int                 `json:"editing_index,omitempty"`
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{
		Items:           h.Session.Items(),
		ClientInfo:      h.Session.Client(),
		CompanyInfo:     companyViewOf(h.Session.Company()),
		Total:           h.Session.Total(),
		NextQuoteNumber: quotation.FormatNumber(h.Session.NextNumber()),
	}
	if idx := h.Session.EditIndex(); idx >= 0 {
		resp.EditingIndex = &idx
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	item, err := h.Session.AddOrUpdateItem(req.Description, req.UnitCost, req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *Handlers) BeginEdit(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	item, err := h.Session.BeginEdit(index)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.Session.DeleteItem(index); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ClearSession(w http.ResponseWriter, r *http.Request) {
	h.Session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SetClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.Session.SetClient(quotation.ClientInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	w.WriteHeader(http.StatusNoContent)
}

func companyViewOf(c quotation.CompanyInfo) companyView {
	return companyView{
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		FooterText: c.FooterText,
		ThemeColor: c.ThemeColor,
		HasLogo:    len(c.Logo) > 0,
	}
}
