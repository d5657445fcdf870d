package services

import (
	"strings"

	"cleverloo/constants"
	"cleverloo/models"
)

// CurrentStatus derives one display label from a facility's room list.
// No rooms means INACTIVE. A single vacant room wins outright; otherwise
// the plurality status is used, ties broken by whichever status is seen
// first in the stored room order. The label is recomputed on every read and
// never persisted.
func CurrentStatus(rooms []models.Room) string {
	if len(rooms) == 0 {
		return constants.CurrentStatusInactive
	}

	counts := make(map[string]int, 4)
	order := make([]string, 0, 4)
	for _, room := range rooms {
		if room.QueueStatus == constants.QueueStatusVacant {
			return constants.CurrentStatusVacant
		}
		if counts[room.QueueStatus] == 0 {
			order = append(order, room.QueueStatus)
		}
		counts[room.QueueStatus]++
	}

	best := order[0]
	for _, status := range order[1:] {
		if counts[status] > counts[best] {
			best = status
		}
	}
	return strings.ToUpper(best)
}
