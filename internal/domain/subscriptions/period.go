package subscriptions

import "time"

// EndDate returns when a period starting at start ends. Monthly periods are a
// flat 30 days; quarterly and annual periods follow the calendar.
func EndDate(cycle BillingCycle, start time.Time) time.Time {
	switch cycle {
	case Monthly:
		return start.AddDate(0, 0, 30)
	case Quarterly:
		return start.AddDate(0, 3, 0)
	case Annually:
		return start.AddDate(1, 0, 0)
	}
	return start
}

// New builds the subscription a user gets when signing up to plan at now.
// Free plans start trialing; paid plans wait for payment confirmation.
func New(userID int64, plan *Plan, now time.Time) *Subscription {
	status := StatusPending
	if plan.Free() {
		status = StatusTrialing
	}
	return &Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    status,
		StartDate: now,
		EndDate:   EndDate(plan.BillingCycle, now),
		AutoRenew: true,
		PlanName:  plan.Name,
	}
}
