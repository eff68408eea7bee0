package dto

// DepositRequest is the request body for a ledger deposit.
type DepositRequest struct {
	Asset  string `json:"asset" binding:"required,address"`
	Amount uint64 `json:"amount"`
}

// WithdrawRequest is the request body for a ledger withdrawal.
type WithdrawRequest struct {
	Asset  string `json:"asset" binding:"required,address"`
	To     string `json:"to" binding:"required,address"`
	Amount uint64 `json:"amount"`
}

// UserRequest adds or removes an authorized user.
type UserRequest struct {
	Address string `json:"address" binding:"required,address"`
}

// SetPluginRequest rebinds the custody plugin for an asset. An empty
// plugin name binds self-custody.
type SetPluginRequest struct {
	Asset  string `json:"asset" binding:"required,address"`
	Plugin string `json:"plugin"`
}

// ForceWithdrawRequest drains funds from a plugin's custody.
type ForceWithdrawRequest struct {
	Asset  string `json:"asset" binding:"required,address"`
	Plugin string `json:"plugin" binding:"required"`
	To     string `json:"to" binding:"required,address"`
	Amount uint64 `json:"amount"`
}

// SetDepositedRequest overrides the recorded deposited amount.
type SetDepositedRequest struct {
	Asset  string `json:"asset" binding:"required,address"`
	Amount uint64 `json:"amount"`
}

// IssueCallerKeyRequest provisions an API key pair for an address.
type IssueCallerKeyRequest struct {
	Address string `json:"address" binding:"required,address"`
	Label   string `json:"label" binding:"max=100"`
}

// IssueCallerKeyResponse returns the key pair; the secret is shown once.
type IssueCallerKeyResponse struct {
	Address   string `json:"address"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// LoginRequest is the request body for console login.
type LoginRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
	SecretKey string `json:"secret_key" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// DepositedResponse reports the recorded deposited amount for an asset.
type DepositedResponse struct {
	Asset     string `json:"asset"`
	Deposited uint64 `json:"deposited"`
}

// PluginResponse reports the active custody binding for an asset.
type PluginResponse struct {
	Asset   string  `json:"asset"`
	Plugin  *string `json:"plugin"`  // nil = self-custody
	Address *string `json:"address"` // custodial address, nil = ledger account
}

// PluginListResponse lists the registered plugin catalog.
type PluginListResponse struct {
	Plugins []string `json:"plugins"`
}

// UserStatusResponse reports authorization for an address.
type UserStatusResponse struct {
	Address    string `json:"address"`
	Authorized bool   `json:"authorized"`
}

// NoticeResponse is one entry of the audit trail.
type NoticeResponse struct {
	ID        string  `json:"id"`
	Caller    string  `json:"caller"`
	Action    string  `json:"action"`
	Asset     *string `json:"asset,omitempty"`
	Amount    *uint64 `json:"amount,omitempty"`
	From      *string `json:"from,omitempty"`
	To        *string `json:"to,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Details   string  `json:"details,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// NoticeListResponse wraps a paginated notice list.
type NoticeListResponse struct {
	Items    []NoticeResponse `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// HealthResponse reports dependency health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
