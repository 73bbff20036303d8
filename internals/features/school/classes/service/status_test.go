package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kelasku_backend/internals/features/school/classes/model"
)

func sched(t *testing.T, day, start, end string) *model.ClassScheduleModel {
	t.Helper()
	return &model.ClassScheduleModel{
		ClassScheduleDayOfWeek: day,
		ClassScheduleStartTime: tod(t, start),
		ClassScheduleEndTime:   tod(t, end),
	}
}

func TestDeriveClassStatus(t *testing.T) {
	tests := []struct {
		name     string
		hasTutor bool
		sched    *model.ClassScheduleModel
		now      time.Time
		want     ClassStatus
	}{
		{"tanpa jadwal", true, nil, monday(12, 0), ClassStatusUnassigned},
		{"tanpa tutor", false, sched(t, "Monday", "16:00", "17:00"), monday(12, 0), ClassStatusUnassigned},
		{"jadwal besok", true, sched(t, "Tuesday", "16:00", "17:00"), monday(12, 0), ClassStatusTomorrow},
		{"hari ini, sebelum mulai", true, sched(t, "Monday", "16:00", "17:00"), monday(12, 0), ClassStatusUpcoming},
		{"hari ini, sedang berlangsung", true, sched(t, "Monday", "16:00", "17:00"), monday(16, 30), ClassStatusToday},
		{"hari ini, tepat di batas awal", true, sched(t, "Monday", "16:00", "17:00"), monday(16, 0), ClassStatusToday},
		{"hari ini, sudah lewat", true, sched(t, "Monday", "16:00", "17:00"), monday(18, 0), ClassStatusPast},
		{"hari lain minggu ini", true, sched(t, "Friday", "16:00", "17:00"), monday(12, 0), ClassStatusAssigned},
		{"nama hari rusak", true, sched(t, "Caturday", "16:00", "17:00"), monday(12, 0), ClassStatusAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveClassStatus(tt.hasTutor, tt.sched, tt.now))
		})
	}
}
