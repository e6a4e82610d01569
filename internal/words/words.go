package words

import (
	"errors"
	"math/rand"
	"os"
	"strings"
)

// Bank is a fixed list of candidate words drawn uniformly at random.
// Repeats across rounds are allowed; there is no history.
type Bank struct {
	list []string
}

var defaultList = []string{"apple", "house", "car", "tree", "pizza"}

func New(list []string) *Bank {
	tmp := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(w)
		if w != "" {
			tmp = append(tmp, w)
		}
	}
	return &Bank{list: tmp}
}

func Default() *Bank {
	return New(defaultList)
}

// Load reads a newline-separated word file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := New(strings.Split(string(data), "\n"))
	if len(b.list) == 0 {
		return nil, errors.New("word bank empty after parsing")
	}
	return b, nil
}

func (b *Bank) Pick() string {
	if len(b.list) == 0 {
		return ""
	}
	return b.list[rand.Intn(len(b.list))]
}

func (b *Bank) Len() int {
	return len(b.list)
}
