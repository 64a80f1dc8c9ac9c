package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aqua-backend/internal/handlers"
)

func NewRouter(
	customerHandler *handlers.CustomerHandler,
	partyHandler *handlers.PartyHandler,
	productHandler *handlers.ProductHandler,
	saleHandler *handlers.SaleHandler,
	fishBoxHandler *handlers.FishBoxHandler,
	reportHandler *handlers.ReportHandler,
	statementHandler *handlers.StatementHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	// Parties (suppliers and distributors)
	partiesAPI := r.PathPrefix("/api/parties").Subrouter()
	partiesAPI.HandleFunc("", partyHandler.ListParties).Methods("GET")
	partiesAPI.HandleFunc("", partyHandler.CreateParty).Methods("POST")
	partiesAPI.HandleFunc("/{id}", partyHandler.GetParty).Methods("GET")
	partiesAPI.HandleFunc("/{id}", partyHandler.UpdateParty).Methods("PUT")
	partiesAPI.HandleFunc("/{id}", partyHandler.DeleteParty).Methods("DELETE")

	// Products / inventory
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/low-stock", productHandler.ListLowStock).Methods("GET")
	productsAPI.HandleFunc("/stats", productHandler.Stats).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}", productHandler.DeleteProduct).Methods("DELETE")

	// Sales and purchases (append-only invoices)
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("", saleHandler.CreateSale).Methods("POST")

	purchasesAPI := r.PathPrefix("/api/purchases").Subrouter()
	purchasesAPI.HandleFunc("", saleHandler.ListPurchases).Methods("GET")
	purchasesAPI.HandleFunc("", saleHandler.CreatePurchase).Methods("POST")

	// Fish boxes
	fishBoxesAPI := r.PathPrefix("/api/fishboxes").Subrouter()
	fishBoxesAPI.HandleFunc("", fishBoxHandler.ListFishBoxes).Methods("GET")
	fishBoxesAPI.HandleFunc("", fishBoxHandler.CreateFishBox).Methods("POST")
	fishBoxesAPI.HandleFunc("/stats", fishBoxHandler.Stats).Methods("GET")
	fishBoxesAPI.HandleFunc("/{id}", fishBoxHandler.GetFishBox).Methods("GET")
	fishBoxesAPI.HandleFunc("/{id}", fishBoxHandler.UpdateFishBox).Methods("PUT")
	fishBoxesAPI.HandleFunc("/{id}", fishBoxHandler.DeleteFishBox).Methods("DELETE")
	fishBoxesAPI.HandleFunc("/{id}/ship", fishBoxHandler.ShipFishBox).Methods("POST")

	// Aggregations and reports
	r.HandleFunc("/api/dashboard", reportHandler.Dashboard).Methods("GET")
	r.HandleFunc("/api/register", saleHandler.Register).Methods("GET")
	r.HandleFunc("/api/summary", reportHandler.Summary).Methods("GET")
	r.HandleFunc("/api/reports", reportHandler.Report).Methods("GET")
	r.HandleFunc("/api/collection-sheet", reportHandler.CollectionSheet).Methods("GET")
	r.HandleFunc("/api/receivables", reportHandler.Receivables).Methods("GET")

	// Customer statements
	r.HandleFunc("/api/statement", statementHandler.Statement).Methods("GET")
	r.HandleFunc("/api/statement/pdf", statementHandler.StatementPDF).Methods("GET")
	r.HandleFunc("/api/statement/csv", statementHandler.StatementCSV).Methods("GET")

	return r
}
