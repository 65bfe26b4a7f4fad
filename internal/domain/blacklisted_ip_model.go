package domain

import "time"

// BlacklistedIP is an origin address barred from posting to the guestbook.
// The address itself is the key; an address is either listed or it is not.
type BlacklistedIP struct {
	IP        string    `gorm:"size:45;primaryKey" json:"ip"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlacklistedIP) TableName() string {
	return "blacklisted_ips"
}
