package requestlog

import (
	"time"
)

// ProxyRequest is one forwarded call. The access key is never stored.
type ProxyRequest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RequestID      string    `json:"request_id" gorm:"column:request_id"`
	Mode           string    `json:"mode" gorm:"index:idx_mode;index:idx_mode_created_at"`
	Location       string    `json:"location" gorm:"column:location"`
	UpstreamStatus int       `json:"upstream_status" gorm:"column:upstream_status"`
	ResponseStatus int       `json:"response_status" gorm:"column:response_status"`
	ErrorCode      int       `json:"error_code" gorm:"column:error_code"`
	ErrorType      string    `json:"error_type" gorm:"column:error_type"`
	PlanLimited    bool      `json:"plan_limited" gorm:"column:plan_limited"`
	CreatedAt      time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_mode_created_at"`
}

func (ProxyRequest) TableName() string {
	return "proxy_requests"
}
