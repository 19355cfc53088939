package quota

import "time"

const period = 30 * 24 * time.Hour

func defaultQuota() Quota {
	return Quota{
		Plan:     "Free",
		Limit:    20,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(period),
	}
}
