package notice

import (
	"fmt"
	"sync"
)

// Notices collects data quality remarks made during one run.
type Notices struct {
	notices []string
	sync.RWMutex
}

// Add adds string to notice list and returns true if it was added. returns false if it already exists.
func (n *Notices) Add(notice string) bool {
	n.Lock()
	defer n.Unlock()
	for _, existing := range n.notices {
		if existing == notice {
			return false
		}
	}

	n.notices = append(n.notices, notice)
	return true
}

func (n *Notices) Addf(format string, args ...interface{}) bool {
	return n.Add(fmt.Sprintf(format, args...))
}

func (n *Notices) List() []string {
	n.RLock()
	defer n.RUnlock()
	out := make([]string, len(n.notices))
	copy(out, n.notices)
	return out
}

func (n *Notices) Len() int {
	n.RLock()
	defer n.RUnlock()
	return len(n.notices)
}
