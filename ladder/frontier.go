package ladder

// frontier is the only thing that differs between the two strategies.
type frontier interface {
	push(word string)
	pop() string
	len() int
}

// newFrontier returns the frontier for s, sized for capHint words.
func (s Strategy) newFrontier(capHint int) (frontier, error) {
	switch s {
	case DepthFirst:
		st := make(stack, 0, capHint)
		return &st, nil
	case BreadthFirst:
		return &queue{items: make([]string, 0, capHint)}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// stack is a LIFO frontier.
type stack []string

func (s *stack) push(word string) { *s = append(*s, word) }

func (s *stack) pop() string {
	old := *s
	word := old[len(old)-1]
	*s = old[:len(old)-1]

	return word
}

func (s *stack) len() int { return len(*s) }

// queue is a FIFO frontier. head advances instead of reslicing so popped
// entries are not copied; the backing array is compacted once it is mostly
// consumed.
type queue struct {
	items []string
	head  int
}

func (q *queue) push(word string) { q.items = append(q.items, word) }

func (q *queue) pop() string {
	word := q.items[q.head]
	q.items[q.head] = ""
	q.head++
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return word
}

func (q *queue) len() int { return len(q.items) - q.head }
