package ordersapi_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"portfolio-backend/database"
	ordersapi "portfolio-backend/internal/api/orders"
	"portfolio-backend/internal/apitest"
	"portfolio-backend/internal/domain/orders"
)

type stubMailer struct {
	fail bool
	sent []orders.Order
}

func (m *stubMailer) SendOrderNotification(order orders.Order) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, order)
	return nil
}

func useMailer(t *testing.T, m ordersapi.Mailer) {
	t.Helper()
	prev := ordersapi.Notifier
	ordersapi.Notifier = m
	t.Cleanup(func() { ordersapi.Notifier = prev })
}

func orderBody() map[string]string {
	return map[string]string{
		"name":      "Ayşe Yılmaz",
		"email":     "ayse@example.com",
		"phone":     "+90 555 111 22 33",
		"message":   "Kedimin portresini istiyorum.",
		"photo_url": "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
	}
}

func TestCreateOrderPersistsAndNotifies(t *testing.T) {
	r := apitest.Setup(t)
	mailer := &stubMailer{}
	useMailer(t, mailer)

	w := apitest.DoJSON(t, r, http.MethodPost, "/orders", orderBody(), "")
	apitest.WantStatus(t, w, http.StatusCreated)

	var resp ordersapi.CreateOrderResponse
	apitest.Decode(t, w, &resp)
	if !resp.EmailSent || resp.Warning != "" {
		t.Fatalf("expected clean success, got email_sent=%v warning=%q", resp.EmailSent, resp.Warning)
	}
	if resp.Order.ID == "" {
		t.Fatal("expected a server-assigned id")
	}
	if resp.Order.PetType != "Kedi" {
		t.Fatalf("expected default pet type, got %q", resp.Order.PetType)
	}
	if resp.Order.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("expected submission date, got %q", resp.Order.Date)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Email != "ayse@example.com" {
		t.Fatalf("expected one notification for the order, got %v", mailer.sent)
	}

	var count int64
	if err := database.DB.Model(&orders.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one persisted order, got %d", count)
	}
}

func TestCreateOrderSavesDespiteEmailFailure(t *testing.T) {
	r := apitest.Setup(t)
	useMailer(t, &stubMailer{fail: true})

	w := apitest.DoJSON(t, r, http.MethodPost, "/orders", orderBody(), "")
	apitest.WantStatus(t, w, http.StatusCreated)

	var resp ordersapi.CreateOrderResponse
	apitest.Decode(t, w, &resp)
	if resp.EmailSent {
		t.Fatal("expected email_sent=false after mailer failure")
	}
	if resp.Warning == "" {
		t.Fatal("expected a soft warning about the notification email")
	}

	var count int64
	database.DB.Model(&orders.Order{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected the order saved either way, got %d rows", count)
	}
}

func TestCreateOrderValidatesBeforeAnySideEffect(t *testing.T) {
	r := apitest.Setup(t)
	mailer := &stubMailer{}
	useMailer(t, mailer)

	body := orderBody()
	delete(body, "photo_url")

	w := apitest.DoJSON(t, r, http.MethodPost, "/orders", body, "")
	apitest.WantStatus(t, w, http.StatusBadRequest)

	if len(mailer.sent) != 0 {
		t.Fatal("expected no notification for a rejected order")
	}
	var count int64
	database.DB.Model(&orders.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no persisted order, got %d rows", count)
	}
}

func TestCreateOrderSanitizesTextButNotPhoto(t *testing.T) {
	r := apitest.Setup(t)
	useMailer(t, &stubMailer{})

	body := orderBody()
	body["message"] = `<script>alert(1)</script>Portre lütfen`

	w := apitest.DoJSON(t, r, http.MethodPost, "/orders", body, "")
	apitest.WantStatus(t, w, http.StatusCreated)

	var resp ordersapi.CreateOrderResponse
	apitest.Decode(t, w, &resp)
	if strings.Contains(resp.Order.Message, "<script>") {
		t.Fatalf("expected markup stripped from message, got %q", resp.Order.Message)
	}
	if resp.Order.PhotoURL != orderBody()["photo_url"] {
		t.Fatalf("expected inline photo untouched, got %q", resp.Order.PhotoURL)
	}
}

func TestOrdersAdminListAndDelete(t *testing.T) {
	r := apitest.Setup(t)
	token := apitest.AdminToken(t)
	useMailer(t, &stubMailer{})

	w := apitest.DoJSON(t, r, http.MethodPost, "/orders", orderBody(), "")
	apitest.WantStatus(t, w, http.StatusCreated)

	var created ordersapi.CreateOrderResponse
	apitest.Decode(t, w, &created)

	// The public surface cannot read or delete orders.
	w = apitest.DoJSON(t, r, http.MethodGet, "/admin/orders", nil, "")
	apitest.WantStatus(t, w, http.StatusUnauthorized)
	w = apitest.DoJSON(t, r, http.MethodDelete, "/admin/orders/"+created.Order.ID, nil, "")
	apitest.WantStatus(t, w, http.StatusUnauthorized)

	w = apitest.DoJSON(t, r, http.MethodGet, "/admin/orders", nil, token)
	apitest.WantStatus(t, w, http.StatusOK)

	var list ordersapi.ListOrdersResponse
	apitest.Decode(t, w, &list)
	if len(list.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(list.Orders))
	}

	w = apitest.DoJSON(t, r, http.MethodDelete, "/admin/orders/"+created.Order.ID, nil, token)
	apitest.WantStatus(t, w, http.StatusOK)

	w = apitest.DoJSON(t, r, http.MethodDelete, "/admin/orders/"+created.Order.ID, nil, token)
	apitest.WantStatus(t, w, http.StatusNotFound)
}
