package intake

// Key prefixes for intake record types.
const (
	PreBookingPrefix = "prebooking_"
	PreOrderPrefix   = "preorder_"
	ContactPrefix    = "contact_"
)

// Intake record statuses. "completed" is reserved for a future admin action;
// nothing transitions a record out of "pending" today.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusUnread    = "unread"
	StatusRead      = "read"
)

// PreBooking is a customer's reservation request for a specific out-of-stock
// product, submitted through the pre-book form.
type PreBooking struct {
	ID          string `json:"id,omitempty" csv:"id"`
	ProductID   string `json:"productId" csv:"product_id"`
	ProductName string `json:"productName" csv:"product_name" validate:"required"`
	Name        string `json:"name" csv:"name" validate:"required"`
	Phone       string `json:"phone" csv:"phone" validate:"required"`
	Email       string `json:"email" csv:"email" validate:"required"`
	Location    string `json:"location" csv:"location"`
	Notes       string `json:"notes,omitempty" csv:"notes"`
	Size        string `json:"size,omitempty" csv:"size"`
	Status      string `json:"status,omitempty" csv:"status"`
	CreatedAt   string `json:"createdAt,omitempty" csv:"created_at"`
}

// PreOrderRequest is an open-ended request for a custom or seasonal outfit,
// collected by the conversational flow.
type PreOrderRequest struct {
	ID        string `json:"id,omitempty" csv:"id"`
	Name      string `json:"name" csv:"name" validate:"required"`
	Phone     string `json:"phone" csv:"phone" validate:"required"`
	Occasion  string `json:"occasion" csv:"occasion" validate:"required"`
	Message   string `json:"message,omitempty" csv:"message"`
	Type      string `json:"type,omitempty" csv:"type"`
	Status    string `json:"status,omitempty" csv:"status"`
	CreatedAt string `json:"createdAt,omitempty" csv:"created_at"`
}

// ContactMessage is a plain contact-form submission.
type ContactMessage struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
