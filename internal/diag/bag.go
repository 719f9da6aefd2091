package diag

import (
	"sort"
	"sync"
)

// Bag collects errors reported by independent files of one run.
// It is safe for concurrent Add.
type Bag struct {
	mu    sync.Mutex
	items []*Error
	max   int
}

// NewBag creates a bag that keeps at most max errors; max <= 0 means unlimited.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add добавляет ошибку, учитывая лимит.
// Возвращает false, если ошибка не добавлена (достигнут лимит).
func (b *Bag) Add(e *Error) bool {
	if e == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, e)
	return true
}

// Len возвращает количество ошибок.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// HasErrors reports whether anything was collected.
func (b *Bag) HasErrors() bool {
	return b.Len() > 0
}

// Items возвращает ошибки. Не модифицируйте возвращаемый срез.
func (b *Bag) Items() []*Error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items
}

// ExitCode returns the highest exit code among collected errors, 0 when empty.
func (b *Bag) ExitCode() int {
	code := 0
	for _, e := range b.Items() {
		code = max(code, e.Kind.ExitCode())
	}
	return code
}

// Sort сортирует по файлу, затем по началу span, затем по коду,
// чтобы вывод параллельных прогонов был детерминированным.
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.FileName != dj.FileName {
			return di.FileName < dj.FileName
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		return di.Kind.Code() < dj.Kind.Code()
	})
}
