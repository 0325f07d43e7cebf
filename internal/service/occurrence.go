package service

import (
	"time"

	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

// occurrenceSource is either a stored session or a schedule projected onto a date.
type occurrenceSource interface {
	toOccurrence() calendar.Occurrence
}

type realSession struct {
	session *model.ClassSession
	taken   int
}

type virtualSlot struct {
	schedule *model.ClassSchedule
	date     time.Time
}

func (r realSession) toOccurrence() calendar.Occurrence {
	s := r.session
	capacity := s.Capacity()
	occ := calendar.Occurrence{
		ID:          s.ID.String(),
		ScheduleID:  s.ScheduleID.String(),
		SessionDate: calendar.FormatDate(time.Time(s.SessionDate)),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      string(s.Status),
		Capacity:    capacity,
		SpotsLeft:   calendar.SpotsLeft(capacity, r.taken),
	}
	describe(&occ, s.Schedule)
	return occ
}

func (v virtualSlot) toOccurrence() calendar.Occurrence {
	s := v.schedule
	occ := calendar.Occurrence{
		ID:          calendar.VirtualOccurrenceID(s.ID, v.date),
		ScheduleID:  s.ID.String(),
		SessionDate: calendar.FormatDate(v.date),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      string(s.Status),
		IsVirtual:   true,
		Capacity:    s.MaxCapacity,
		SpotsLeft:   calendar.SpotsLeft(s.MaxCapacity, s.CurrentEnrolled),
	}
	describe(&occ, s)
	return occ
}

// describe copies the display details of schedule into occ.
func describe(occ *calendar.Occurrence, schedule *model.ClassSchedule) {
	if schedule == nil {
		return
	}
	occ.OnlineLink = schedule.OnlineLink

	if sc := schedule.SubClass; sc != nil {
		occ.SubClass = subClassInfo(sc)
	}

	if t := schedule.Teacher; t != nil {
		specialties := []string(t.Specialties)
		if specialties == nil {
			specialties = []string{}
		}
		occ.Teacher = calendar.TeacherInfo{
			ID:          t.ID.String(),
			FirstName:   t.FirstName,
			LastName:    t.LastName,
			Bio:         t.Bio,
			PhotoURL:    t.PhotoURL,
			Specialties: specialties,
		}
	}

	if r := schedule.Room; r != nil {
		info := &calendar.RoomInfo{Name: r.Name}
		if r.Location != nil {
			info.LocationName = r.Location.Name
			info.LocationIsOnline = r.Location.IsOnline
		}
		occ.Room = info
	}
}

// projects reports whether schedule generates an occurrence on date: it must be ACTIVE, fall
// on the schedule's weekday and sit inside its validity range.
func projects(schedule *model.ClassSchedule, date time.Time) bool {
	if schedule.Status != model.ClassStatusActive {
		return false
	}
	wd, ok := schedule.DayOfWeek.Weekday()
	if !ok || date.Weekday() != wd {
		return false
	}
	return validity(schedule).Contains(date)
}

func validity(schedule *model.ClassSchedule) calendar.Validity {
	v := calendar.Validity{From: time.Time(schedule.StartDate)}
	if schedule.EndDate != nil {
		until := time.Time(*schedule.EndDate)
		v.Until = &until
	}
	return v
}

func subClassInfo(sc *model.SubClass) calendar.SubClassInfo {
	info := calendar.SubClassInfo{
		ID:              sc.ID.String(),
		Name:            sc.Name,
		Description:     sc.Description,
		Price:           sc.Price,
		Currency:        sc.Currency,
		Level:           sc.Level,
		AgeGroup:        sc.AgeGroup,
		DurationMinutes: sc.DurationMinutes,
		Capacity:        sc.Capacity,
		CoverURL:        sc.CoverURL,
	}
	if sc.Class != nil {
		info.ClassName = sc.Class.Name
		info.ClassIconURL = sc.Class.IconURL
	}
	return info
}
