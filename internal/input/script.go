// internal/input/script.go
package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Script — заранее записанная последовательность ввода для безголового прогона.
// Формат: шаги через запятую, каждый шаг "<клавиши>*<тиков>", где клавиши:
// любые из w/a/s/d, а "-" означает отсутствие ввода. Например "d*60,wd*30,-*20".
type Script struct {
	steps []scriptStep
	total int
}

type scriptStep struct {
	snap  Snapshot
	ticks int
}

// ParseScript разбирает строку сценария.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	src = strings.TrimSpace(src)
	if src == "" {
		return s, nil
	}
	for i, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		keys, count, found := strings.Cut(part, "*")
		ticks := 1
		if found {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("step %d (%q): invalid tick count", i+1, part)
			}
			ticks = n
		}
		snap, err := parseKeys(keys)
		if err != nil {
			return nil, fmt.Errorf("step %d (%q): %w", i+1, part, err)
		}
		s.steps = append(s.steps, scriptStep{snap: snap, ticks: ticks})
		s.total += ticks
	}
	return s, nil
}

func parseKeys(keys string) (Snapshot, error) {
	var snap Snapshot
	if keys == "-" {
		return snap, nil
	}
	if keys == "" {
		return snap, fmt.Errorf("empty key set")
	}
	for _, r := range strings.ToLower(keys) {
		switch r {
		case 'w':
			snap.Up = true
		case 's':
			snap.Down = true
		case 'a':
			snap.Left = true
		case 'd':
			snap.Right = true
		default:
			return snap, fmt.Errorf("unknown key %q", r)
		}
	}
	return snap, nil
}

// Len — общее число тиков в сценарии.
func (s *Script) Len() int {
	return s.total
}

// At возвращает ввод для тика с номером tick (с нуля). За концом сценария ввода нет.
func (s *Script) At(tick int) Snapshot {
	for _, st := range s.steps {
		if tick < st.ticks {
			return st.snap
		}
		tick -= st.ticks
	}
	return Snapshot{}
}
