package app

import (
	"net/http"
	"time"

	"obiene/quotation_backend/internal/app/config"
	apphttp "obiene/quotation_backend/internal/app/http"
	"obiene/quotation_backend/internal/app/http/handlers"
	"obiene/quotation_backend/internal/app/logging"
	"obiene/quotation_backend/internal/domain/quotation"
	pdfgen "obiene/quotation_backend/internal/domain/quotation/pdf/gofpdf"
	"obiene/quotation_backend/internal/infra/store"
)

func Run() {
	cfg := config.MustLoad()
	log := logging.New(cfg)

	st, err := store.New(cfg.DataDir, log)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	company := quotation.CompanyInfo{
		Name:       cfg.Company.Name,
		Address:    cfg.Company.Address,
		Phone:      cfg.Company.Phone,
		Email:      cfg.Company.Email,
		FooterText: cfg.Company.FooterText,
		ThemeColor: cfg.Company.ThemeColor,
	}
	// Seed the counter from disk so a restart continues the sequence
	// instead of overwriting quotation_000001.json.
	sess := quotation.NewSession(company, st.NextNumber())

	h := handlers.New(sess, st, pdfgen.New(), log)
	router := apphttp.NewRouter(cfg, log, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
