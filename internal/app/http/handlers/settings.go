package handlers

import (
	"encoding/json"
	"net/http"

	"obiene/quotation_backend/internal/domain/quotation"
)

type companyRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FooterText string `json:"footer_text"`
	ThemeColor string `json:"theme_color"`
}

func (h *Handlers) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.Session.SetCompany(quotation.CompanyInfo{
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		FooterText: req.FooterText,
		ThemeColor: req.ThemeColor,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("logo")
	if err != nil {
		http.Error(w, "logo file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := quotation.NormalizeLogo(file)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.Session.SetLogo(data)
	w.WriteHeader(http.StatusNoContent)
}
