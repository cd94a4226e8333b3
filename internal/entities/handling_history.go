package entities

import (
	"sort"
	"time"
)

// HandlingHistory - упорядоченный по времени завершения журнал событий одного груза.
// Значение неизменяемо: добавление возвращает новую историю.
type HandlingHistory struct {
	events []HandlingEvent
}

// NewHandlingHistory сортирует события по времени завершения (стабильно)
// и отбрасывает повторы.
func NewHandlingHistory(events ...HandlingEvent) HandlingHistory {
	sorted := make([]HandlingEvent, 0, len(events))
	for _, e := range events {
		if containsEvent(sorted, e) {
			continue
		}
		sorted = append(sorted, e)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletionTime.Before(sorted[j].CompletionTime)
	})

	return HandlingHistory{events: sorted}
}

// Events возвращает копию событий в хронологическом порядке.
func (h HandlingHistory) Events() []HandlingEvent {
	events := make([]HandlingEvent, len(h.events))
	copy(events, h.events)
	return events
}

func (h HandlingHistory) Len() int {
	return len(h.events)
}

func (h HandlingHistory) IsEmpty() bool {
	return len(h.events) == 0
}

func (h HandlingHistory) MostRecent() (HandlingEvent, bool) {
	if h.IsEmpty() {
		return HandlingEvent{}, false
	}
	return h.events[len(h.events)-1], true
}

// Find возвращает сохранённое событие, совпадающее с e по идентичности.
func (h HandlingHistory) Find(e HandlingEvent) (HandlingEvent, bool) {
	for _, stored := range h.events {
		if stored.SameEventAs(e) {
			return stored, true
		}
	}
	return HandlingEvent{}, false
}

func (h HandlingHistory) Contains(e HandlingEvent) bool {
	return containsEvent(h.events, e)
}

// Append добавляет событие на его место по времени завершения.
// Повтор не меняет историю, второй результат тогда false.
func (h HandlingHistory) Append(e HandlingEvent) (HandlingHistory, bool) {
	if h.Contains(e) {
		return h, false
	}

	// события с тем же временем остаются в порядке поступления
	pos := sort.Search(len(h.events), func(i int) bool {
		return h.events[i].CompletionTime.After(e.CompletionTime)
	})

	events := make([]HandlingEvent, 0, len(h.events)+1)
	events = append(events, h.events[:pos]...)
	events = append(events, e)
	events = append(events, h.events[pos:]...)
	return HandlingHistory{events: events}, true
}

// Record - Append без признака добавления.
func (h HandlingHistory) Record(e HandlingEvent) HandlingHistory {
	next, _ := h.Append(e)
	return next
}

// Without возвращает историю без события e.
func (h HandlingHistory) Without(e HandlingEvent) HandlingHistory {
	events := make([]HandlingEvent, 0, len(h.events))
	for _, stored := range h.events {
		if stored.SameEventAs(e) {
			continue
		}
		events = append(events, stored)
	}
	return HandlingHistory{events: events}
}

// RegisteredUpTo - история, какой она была после регистрации события со
// временем at: события, зарегистрированные позже, отбрасываются.
func (h HandlingHistory) RegisteredUpTo(at time.Time) HandlingHistory {
	events := make([]HandlingEvent, 0, len(h.events))
	for _, stored := range h.events {
		if stored.RegistrationTime.After(at) {
			continue
		}
		events = append(events, stored)
	}
	return HandlingHistory{events: events}
}

func containsEvent(events []HandlingEvent, e HandlingEvent) bool {
	for _, stored := range events {
		if stored.SameEventAs(e) {
			return true
		}
	}
	return false
}
