package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Messages maps a notification event to the SMS pattern id and the parameters
// the pattern expects, optionally per branch.
type Messages struct {
	ID         primitive.ObjectID `bson:"_id"`
	CreatedAt  primitive.DateTime `bson:"createdAt"`
	UpdatedAt  primitive.DateTime `bson:"updatedAt"`
	PatternId  int32              `bson:"patternId"`
	Parameters []string           `bson:"parameters"`
	Event      string             `bson:"event"`
	BranchId   string             `bson:"branchId"`
	IsDeleted  bool               `bson:"isDeleted"`
}

// MessageResponse contains the resolved pattern id and required parameters
type MessageResponse struct {
	MessageID  int32
	Parameters []string
}

type NotificationParameter struct {
	Name  string
	Value string
}

type SmsNotificationRequestPayload struct {
	NotificationParameter []NotificationParameter `json:"notificationParameter"`
	PatternID             int32                   `json:"patternId"`
}

type SmsNotificationParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SmsNotificationRequest struct {
	Phone           string                     `json:"phone"`
	SmsDbEventName  string                     `json:"sms_db_event_name"`
	NotifParameters []SmsNotificationParameter `json:"notif_parameters"`
	PatternID       int32                      `json:"notification_pattern_id"`
}

// ReconciliationAlert is published when a payment overshoots the remaining
// balance; back office resolves the excess manually.
type ReconciliationAlert struct {
	LoanId       string `json:"loanId"`
	PaymentGUID  string `json:"paymentGuid"`
	ExcessAmount string `json:"excessAmount"`
	RecordedBy   string `json:"recordedBy"`
}
