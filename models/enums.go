package models

// Waiting list member statuses
const (
	MemberStatusPending   = "pending"
	MemberStatusApproved  = "approved"
	MemberStatusRejected  = "rejected"
	MemberStatusNotified  = "notified"
	MemberStatusAccepted  = "accepted"
	MemberStatusDeclined  = "declined"
	MemberStatusActive    = "active"
	MemberStatusInactive  = "inactive"
	MemberStatusCancelled = "cancelled"
)

var memberStatuses = []string{
	MemberStatusPending,
	MemberStatusApproved,
	MemberStatusRejected,
	MemberStatusNotified,
	MemberStatusAccepted,
	MemberStatusDeclined,
	MemberStatusActive,
	MemberStatusInactive,
	MemberStatusCancelled,
}

func MemberStatuses() []string {
	statuses := make([]string, len(memberStatuses))
	copy(statuses, memberStatuses)
	return statuses
}

func IsValidMemberStatus(status string) bool {
	for _, s := range memberStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Interaction follow-up actions
const (
	ActionFollowUpCall      = "follow_up_call"
	ActionFollowUpEmail     = "follow_up_email"
	ActionScheduleMeeting   = "schedule_meeting"
	ActionSendProposal      = "send_proposal"
	ActionReviewProposal    = "review_proposal"
	ActionSendContract      = "send_contract"
	ActionSendDocumentation = "send_documentation"
	ActionScheduleDemo      = "schedule_demo"
	ActionCheckIn           = "check_in"
	ActionSendQuote         = "send_quote"
	ActionFollowUpInWeeks   = "follow_up_in_weeks"
	ActionFollowUpInMonths  = "follow_up_in_months"
	ActionSendInvoice       = "send_invoice"
	ActionRequestFeedback   = "request_feedback"
	ActionSendThankYou      = "send_thank_you"
	ActionOnboardingCall    = "onboarding_call"
	ActionTrainingSession   = "training_session"
	ActionCustom            = "custom"
)

// ActionInfo describes a follow-up action for API consumers
type ActionInfo struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var actionCatalog = []ActionInfo{
	{ActionFollowUpCall, "Follow Up Call", "Schedule a follow-up phone call"},
	{ActionFollowUpEmail, "Follow Up Email", "Send a follow-up email"},
	{ActionScheduleMeeting, "Schedule Meeting", "Schedule a meeting"},
	{ActionSendProposal, "Send Proposal", "Send a proposal"},
	{ActionReviewProposal, "Review Proposal", "Review a proposal"},
	{ActionSendContract, "Send Contract", "Send a contract"},
	{ActionSendDocumentation, "Send Documentation", "Send documentation"},
	{ActionScheduleDemo, "Schedule Demo", "Schedule a product demo"},
	{ActionCheckIn, "Check In", "Check in with the contact"},
	{ActionSendQuote, "Send Quote", "Send a quote"},
	{ActionFollowUpInWeeks, "Follow Up in Weeks", "Follow up in a few weeks"},
	{ActionFollowUpInMonths, "Follow Up in Months", "Follow up in a few months"},
	{ActionSendInvoice, "Send Invoice", "Send an invoice"},
	{ActionRequestFeedback, "Request Feedback", "Request feedback"},
	{ActionSendThankYou, "Send Thank You", "Send a thank you message"},
	{ActionOnboardingCall, "Onboarding Call", "Schedule an onboarding call"},
	{ActionTrainingSession, "Training Session", "Schedule a training session"},
	{ActionCustom, "Custom", "Custom action (user-defined)"},
}

func ActionCatalog() []ActionInfo {
	catalog := make([]ActionInfo, len(actionCatalog))
	copy(catalog, actionCatalog)
	return catalog
}

func IsValidAction(action string) bool {
	for _, a := range actionCatalog {
		if a.Value == action {
			return true
		}
	}
	return false
}
