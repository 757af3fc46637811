package domain

import "time"

const (
	RoleVisitor      = "visitor"
	RoleAffiliate    = "affiliate"
	RoleAdmin        = "admin"
	RoleAdminGeneral = "admin_general"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	CommissionTypeDirect   = "direct"
	CommissionTypeReferral = "referral"

	CommissionStatusPending  = "pending"
	CommissionStatusApproved = "approved"
	CommissionStatusPaid     = "paid"
)

const (
	AffiliateStatusActive   = "active"
	AffiliateStatusInactive = "inactive"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
)

const (
	RuleTypeNumber = "number"
	RuleTypeString = "string"
	RuleTypeJSON   = "json"
)

type User struct {
	ID           int        `db:"id"`
	DNI          string     `db:"dni"`
	FullName     string     `db:"full_name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	MaxReferrals int        `db:"max_referrals"`
	CreatedBy    *int       `db:"created_by"`
	LastLogin    *time.Time `db:"last_login"`
	CreatedAt    time.Time  `db:"created_at"`
}

// Affiliate extends a User with role=affiliate; shares the user id.
type Affiliate struct {
	ID        int       `db:"id"`
	SponsorID *int      `db:"sponsor_id"`
	Phone     string    `db:"phone"`
	Region    string    `db:"region"`
	City      string    `db:"city"`
	Address   string    `db:"address"`
	Reference string    `db:"reference"`
	Status    string    `db:"status"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
}

type Referral struct {
	ID         int       `db:"id"`
	ReferrerID int       `db:"referrer_id"`
	ReferredID int       `db:"referred_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type ShippingAddress struct {
	ID        int    `db:"id"`
	UserID    int    `db:"user_id"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Region    string `db:"region"`
	City      string `db:"city"`
	Address   string `db:"address"`
	Reference string `db:"reference"`
	IsDefault bool   `db:"is_default"`
}

type Category struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Slug     string `db:"slug"`
	IsActive bool   `db:"is_active"`
}

type Product struct {
	ID             int       `db:"id"`
	CategoryID     int       `db:"category_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	SKU            string    `db:"sku"`
	PublicPrice    float64   `db:"public_price"`
	AffiliatePrice float64   `db:"affiliate_price"`
	Stock          int       `db:"stock"`
	ImageURL       string    `db:"image_url"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

type Cart struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CartItem struct {
	ID        int `db:"id"`
	CartID    int `db:"cart_id"`
	ProductID int `db:"product_id"`
	Quantity  int `db:"quantity"`
}

type Order struct {
	ID                int        `db:"id"`
	UserID            int        `db:"user_id"`
	Status            string     `db:"status"`
	TotalAmount       float64    `db:"total_amount"`
	ShippingCost      float64    `db:"shipping_cost"`
	ShippingAddressID *int       `db:"shipping_address_id"`
	TrackingCode      string     `db:"tracking_code"`
	DeliveredAt       *time.Time `db:"delivered_at"`
	CreatedAt         time.Time  `db:"created_at"`
}

// OrderItem snapshots the unit price at purchase time.
type OrderItem struct {
	ID        int     `db:"id"`
	OrderID   int     `db:"order_id"`
	ProductID int     `db:"product_id"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
}

type Payment struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	Method    string    `db:"method"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	Reference string    `db:"reference"`
	PaidAt    time.Time `db:"paid_at"`
}

type Commission struct {
	ID          int        `db:"id"`
	AffiliateID int        `db:"affiliate_id"`
	OrderItemID int        `db:"order_item_id"`
	Type        string     `db:"type"`
	Amount      float64    `db:"amount"`
	Percentage  float64    `db:"percentage"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ApprovedAt  *time.Time `db:"approved_at"`
}

// MinMonthlyBuy is one row per (affiliate, month), overwritten on recompute.
type MinMonthlyBuy struct {
	ID          int       `db:"id"`
	AffiliateID int       `db:"affiliate_id"`
	Month       time.Time `db:"month"`
	Quantity    int       `db:"quantity"`
	Achieved    bool      `db:"achieved"`
}

type Reward struct {
	ID             int    `db:"id"`
	Name           string `db:"name"`
	Description    string `db:"description"`
	PointsRequired int    `db:"points_required"`
	Stock          int    `db:"stock"`
	ImageURL       string `db:"image_url"`
	IsActive       bool   `db:"is_active"`
}

type RewardClaim struct {
	ID          int        `db:"id"`
	AffiliateID int        `db:"affiliate_id"`
	RewardID    int        `db:"reward_id"`
	PointsUsed  int        `db:"points_used"`
	Status      string     `db:"status"`
	ClaimedAt   time.Time  `db:"claimed_at"`
	DeliveredAt *time.Time `db:"delivered_at"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	ReadFlag  bool      `db:"read_flag"`
	CreatedAt time.Time `db:"created_at"`
}

type BusinessRule struct {
	ID        int       `db:"id"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	Type      string    `db:"type"`
	UpdatedAt time.Time `db:"updated_at"`
}
