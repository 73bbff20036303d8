package service

import (
	"time"

	"kelasku_backend/internals/features/school/classes/model"
)

// Status lifecycle kelas — hanya untuk tampilan/filter, TIDAK dipakai
// sebagai gerbang pembuatan kode (itu urusan window generate).
type ClassStatus string

const (
	ClassStatusUnassigned ClassStatus = "unassigned"
	ClassStatusAssigned   ClassStatus = "assigned"
	ClassStatusUpcoming   ClassStatus = "upcoming"
	ClassStatusToday      ClassStatus = "today"
	ClassStatusTomorrow   ClassStatus = "tomorrow"
	ClassStatusPast       ClassStatus = "past"
)

// DeriveClassStatus mengklasifikasikan kelas dari tutor + jadwal + now.
func DeriveClassStatus(hasTutor bool, sched *model.ClassScheduleModel, now time.Time) ClassStatus {
	if !hasTutor || sched == nil {
		return ClassStatusUnassigned
	}

	day, ok := parseDay(sched.ClassScheduleDayOfWeek)
	if !ok {
		return ClassStatusAssigned
	}

	if day == now.AddDate(0, 0, 1).Weekday() {
		return ClassStatusTomorrow
	}

	if day == now.Weekday() {
		sess := ResolveSession(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now)
		switch {
		case now.Before(sess.Start):
			return ClassStatusUpcoming
		case now.After(sess.End):
			return ClassStatusPast
		default:
			return ClassStatusToday
		}
	}

	return ClassStatusAssigned
}
