package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truethread/storefront/config"
	"github.com/truethread/storefront/internal/intake"
	"github.com/truethread/storefront/internal/kvstore"
)

func testTwilioConfig() config.TwilioConfig {
	return config.TwilioConfig{
		AccountSid:   "AC123",
		AuthToken:    "secret",
		WhatsappFrom: "whatsapp:+14155238886",
		AdminPhone:   "+918147008048",
	}
}

func TestTwilioDispatcher_SendsBasicAuthForm(t *testing.T) {
	var got struct {
		path string
		user string
		pass string
		form map[string]string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.user, got.pass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		got.form = map[string]string{
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
			"Body": r.PostFormValue("Body"),
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1"}`))
	}))
	defer srv.Close()

	d := NewTwilioDispatcher(testTwilioConfig())
	d.BaseURL = srv.URL

	d.NotifyPreOrder(context.Background(), intake.PreOrderRequest{
		ID:       "preorder_1",
		Name:     "Asha",
		Phone:    "9876543210",
		Occasion: "Wedding",
	})

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", got.path)
	assert.Equal(t, "AC123", got.user)
	assert.Equal(t, "secret", got.pass)
	assert.Equal(t, "whatsapp:+14155238886", got.form["From"])
	assert.Equal(t, "whatsapp:+918147008048", got.form["To"])
	assert.Contains(t, got.form["Body"], "New Pre-Order Request")
	assert.Contains(t, got.form["Body"], "Asha")
	assert.Contains(t, got.form["Body"], "Wedding")
	assert.Contains(t, got.form["Body"], "preorder_1")
}

func TestTwilioDispatcher_SkipsWithoutCredentials(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testTwilioConfig()
	cfg.AuthToken = ""
	d := NewTwilioDispatcher(cfg)
	d.BaseURL = srv.URL

	d.NotifyPreBooking(context.Background(), intake.PreBooking{Name: "Asha"})
	assert.Zero(t, calls)
}

// A rejected or unreachable provider must never fail the submission that
// triggered the notification.
func TestSubmitSucceedsWhenProviderFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":20003,"message":"authenticate"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	d := NewTwilioDispatcher(testTwilioConfig())
	d.BaseURL = srv.URL

	store, err := kvstore.OpenBolt(t.TempDir(), "notify-test")
	require.NoError(t, err)
	defer store.Close()

	svc := intake.NewService(store, d)
	id, err := svc.SubmitPreBooking(context.Background(), intake.PreBooking{
		ProductName: "Silk Designer Saree",
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	bookings, err := svc.ListPreBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, id, bookings[0].ID)
}

func TestSubmitSucceedsWhenProviderUnreachable(t *testing.T) {
	d := NewTwilioDispatcher(testTwilioConfig())
	// nothing listens here
	d.BaseURL = "http://127.0.0.1:1"

	store, err := kvstore.OpenBolt(t.TempDir(), "notify-test")
	require.NoError(t, err)
	defer store.Close()

	svc := intake.NewService(store, d)
	id, err := svc.SubmitPreOrderRequest(context.Background(), intake.PreOrderRequest{
		Name:     "Asha",
		Phone:    "9876543210",
		Occasion: "Reception",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
