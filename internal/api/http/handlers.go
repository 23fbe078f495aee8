package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/service"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/gorilla/mux"
)

type Handler struct {
	State        *storage.Session
	Catalog      service.CatalogServiceInterface
	Stock        service.StockServiceInterface
	Orders       service.OrderServiceInterface
	Finance      service.FinanceServiceInterface
	Procurement  service.ProcurementServiceInterface
	Reservations service.ReservationServiceInterface
	Confirm      *service.ConfirmGate
	Backend      service.Backend

	mu sync.Mutex
}

func NewHandler(state *storage.Session, catalog service.CatalogServiceInterface, stock service.StockServiceInterface,
	orders service.OrderServiceInterface, finance service.FinanceServiceInterface,
	procurement service.ProcurementServiceInterface, reservations service.ReservationServiceInterface,
	confirm *service.ConfirmGate, backend service.Backend) *Handler {
	return &Handler{
		State:        state,
		Catalog:      catalog,
		Stock:        stock,
		Orders:       orders,
		Finance:      finance,
		Procurement:  procurement,
		Reservations: reservations,
		Confirm:      confirm,
		Backend:      backend,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes", h.saveDish).Methods("POST")
	r.HandleFunc("/api/dishes/import", h.importDishes).Methods("POST")
	r.HandleFunc("/api/dishes/{id}", h.deleteDish).Methods("DELETE")
	r.HandleFunc("/api/dishes/{id}/availability", h.dishAvailability).Methods("GET")
	r.HandleFunc("/api/dishes/{id}/image", h.uploadDishImage).Methods("POST")

	r.HandleFunc("/api/ingredients", h.getIngredients).Methods("GET")
	r.HandleFunc("/api/ingredients", h.saveIngredient).Methods("POST")
	r.HandleFunc("/api/ingredients/import", h.importIngredients).Methods("POST")
	r.HandleFunc("/api/ingredients/{id}/restock", h.restockIngredient).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/complete", h.completeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/transactions", h.getTransactions).Methods("GET")
	r.HandleFunc("/api/transactions", h.recordTransaction).Methods("POST")
	r.HandleFunc("/api/transactions/{id}/invoice", h.reconcileInvoice).Methods("POST")

	r.HandleFunc("/api/procurement", h.getProcurementPlan).Methods("GET")
	r.HandleFunc("/api/procurement/execute", h.executeProcurement).Methods("POST")

	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/checkin", h.checkInReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/cancel", h.cancelReservation).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")

	r.HandleFunc("/api/confirmation", h.getConfirmation).Methods("GET")
	r.HandleFunc("/api/confirmation/confirm", h.confirmPending).Methods("POST")
	r.HandleFunc("/api/confirmation/cancel", h.cancelPending).Methods("POST")

	r.HandleFunc("/api/init-db", h.initSchema).Methods("GET")
}

// serialize runs one request at a time: every state-mutating action completes
// before the next is processed.
func (h *Handler) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "erp",
		"offline":   h.State.Offline,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, response)
}

// --- catalog ---

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	dishes := h.Catalog.Dishes()
	payload := make([]map[string]interface{}, 0, len(dishes))
	for _, dish := range dishes {
		payload = append(payload, map[string]interface{}{
			"id":        dish.ID,
			"name":      dish.Name,
			"price":     dish.Price,
			"image":     dish.Image,
			"available": h.Stock.Availability(dish.ID),
			"recipe":    h.Catalog.Recipe(dish.ID),
		})
	}
	writeJSON(w, payload)
}

func (h *Handler) saveDish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dish   domain.Dish         `json:"dish"`
		Recipe []domain.RecipeItem `json:"recipe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish, err := h.Catalog.SaveDish(req.Dish, req.Recipe)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Catalog.RequestDeleteDish(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeConfirmationRequested(w, h.Confirm)
}

func (h *Handler) dishAvailability(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if h.State.FindDish(id) == nil {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]bool{"available": h.Stock.Availability(id)})
}

func (h *Handler) importDishes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	count, err := h.Catalog.ImportDishes(req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]int{"imported": count})
}

func (h *Handler) uploadDishImage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploadDir := "./uploads"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}

	filename := "dish_" + strconv.Itoa(id) + "_" + header.Filename
	path := filepath.Join(uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Catalog.UpdateDishImage(id, imageURL); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]string{"image_url": imageURL})
}

func (h *Handler) getIngredients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Catalog.Ingredients())
}

func (h *Handler) saveIngredient(w http.ResponseWriter, r *http.Request) {
	var ing domain.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	saved, err := h.Catalog.SaveIngredient(ing)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, saved)
}

func (h *Handler) importIngredients(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	count, err := h.Catalog.ImportIngredients(req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]int{"imported": count})
}

func (h *Handler) restockIngredient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Stock.RequestRestock(id, req.Amount); err != nil {
		writeServiceError(w, err)
		return
	}
	writeConfirmationRequested(w, h.Confirm)
}

// --- orders ---

type placeOrderRequest struct {
	Items       []orderLine `json:"items"`
	TableNo     string      `json:"table_no"`
	GuestCount  int         `json:"guest_count"`
	NeedInvoice bool        `json:"need_invoice"`
}

type orderLine struct {
	DishID int `json:"dish_id"`
	Count  int `json:"count"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.resolveCart(req.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if req.NeedInvoice {
		h.State.NeedInvoice = true
	}

	order, err := h.Orders.PlaceOrder(items, domain.TableInfo{TableNo: req.TableNo, GuestCount: req.GuestCount})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// resolveCart maps dish ids to catalog snapshots; prices are taken from the
// catalog, never trusted from the client.
func (h *Handler) resolveCart(lines []orderLine) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, line := range lines {
		dish := h.State.FindDish(line.DishID)
		if dish == nil {
			return nil, service.ErrDishNotFound
		}
		if line.Count <= 0 {
			continue
		}
		items = append(items, domain.CartItem{Dish: *dish, Count: line.Count})
	}
	return items, nil
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Orders.Orders())
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.CompleteOrder(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.OrderQRCode(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

// --- finance ---

func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Finance.Transactions())
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		NeedInvoice bool    `json:"need_invoice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Type != domain.TxIncome && req.Type != domain.TxExpense {
		http.Error(w, "type must be income or expense", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	tx := h.Finance.Record(req.Type, req.Category, req.Amount, req.Description, req.NeedInvoice)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

func (h *Handler) reconcileInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InvoiceNo string `json:"invoice_no"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.InvoiceNo == "" {
		http.Error(w, "invoice number is required", http.StatusBadRequest)
		return
	}
	if err := h.Finance.ReconcileInvoice(mux.Vars(r)["id"], req.InvoiceNo); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- procurement ---

func (h *Handler) getProcurementPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Procurement.Plan())
}

func (h *Handler) executeProcurement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []domain.ProcurementItem `json:"items"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	list := req.Items
	if len(list) == 0 {
		list = h.Procurement.Plan().Items
	}
	if err := h.Procurement.RequestExecution(list); err != nil {
		writeServiceError(w, err)
		return
	}
	writeConfirmationRequested(w, h.Confirm)
}

// --- reservations ---

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Reservations.Reservations())
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName string      `json:"customer_name"`
		Date         string      `json:"date"`
		Time         string      `json:"time"`
		Guests       int         `json:"guests"`
		Items        []orderLine `json:"items"`
		RealTableNo  string      `json:"real_table_no"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	items, err := h.resolveCart(req.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := h.Reservations.Create(domain.Reservation{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		Guests:       req.Guests,
		Items:        items,
		RealTableNo:  req.RealTableNo,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) checkInReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Reservations.RequestCheckIn(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeConfirmationRequested(w, h.Confirm)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Reservations.RequestCancel(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeConfirmationRequested(w, h.Confirm)
}

// --- POS working state ---

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"items":        h.State.Cart,
		"table_no":     h.State.TableNo,
		"guest_count":  h.State.GuestCount,
		"need_invoice": h.State.NeedInvoice,
	})
}

// --- confirmation gate ---

func (h *Handler) getConfirmation(w http.ResponseWriter, r *http.Request) {
	title, message, ok := h.Confirm.Pending()
	writeJSON(w, map[string]interface{}{
		"pending": ok,
		"title":   title,
		"message": message,
	})
}

func (h *Handler) confirmPending(w http.ResponseWriter, r *http.Request) {
	if err := h.Confirm.Confirm(); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cancelPending(w http.ResponseWriter, r *http.Request) {
	h.Confirm.Cancel()
	w.WriteHeader(http.StatusNoContent)
}

// --- admin ---

func (h *Handler) initSchema(w http.ResponseWriter, r *http.Request) {
	if h.Backend == nil {
		http.Error(w, "database initialization is unavailable in offline mode", http.StatusServiceUnavailable)
		return
	}
	if err := h.Backend.InitSchema(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "database initialized"})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func writeConfirmationRequested(w http.ResponseWriter, gate *service.ConfirmGate) {
	title, message, _ := gate.Pending()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{
		"title":   title,
		"message": message,
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrIngredientNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInvoiceNotPending),
		errors.Is(err, service.ErrReservationClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrMissingTableNo),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrMissingSchedule),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrUnknownIngredient),
		errors.Is(err, service.ErrNothingImported),
		errors.Is(err, service.ErrNothingToProcure),
		errors.Is(err, service.ErrNoPendingConfirm):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
