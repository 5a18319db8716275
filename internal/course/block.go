package course

import (
	"encoding/json"
	"fmt"
)

// BlockKind is the wire discriminator of a lesson block.
type BlockKind string

const (
	KindKeyIdea  BlockKind = "keyIdea"
	KindTheory   BlockKind = "theory"
	KindExample  BlockKind = "example"
	KindActivity BlockKind = "activity"
	KindQuiz     BlockKind = "quiz"
)

// BlockKinds lists every kind in the order the generator is asked to use.
var BlockKinds = []BlockKind{KindKeyIdea, KindTheory, KindExample, KindActivity, KindQuiz}

// Block is one section of a lesson. The concrete types are KeyIdea,
// Theory, Example, Activity and Quiz; no other package can add kinds.
type Block interface {
	Kind() BlockKind
	Heading() string
	Body() string
	sealed()
}

// Text is the payload shared by every block kind: a title and markdown
// content.
type Text struct {
	Title   string
	Content string
}

func (t Text) Heading() string { return t.Title }
func (t Text) Body() string    { return t.Content }
func (Text) sealed()           {}

// KeyIdea summarises the central concept of a lesson.
type KeyIdea struct{ Text }

// Theory is the in-depth explanation.
type Theory struct{ Text }

// Example applies the theory to a concrete case.
type Example struct{ Text }

// Activity is a hands-on exercise.
type Activity struct{ Text }

// Quiz is a knowledge check. Questions is never empty for a decoded block.
type Quiz struct {
	Text
	Questions []QuizQuestion
}

func (KeyIdea) Kind() BlockKind  { return KindKeyIdea }
func (Theory) Kind() BlockKind   { return KindTheory }
func (Example) Kind() BlockKind  { return KindExample }
func (Activity) Kind() BlockKind { return KindActivity }
func (Quiz) Kind() BlockKind     { return KindQuiz }

// Blocks is an ordered list of lesson blocks with a tagged JSON encoding.
type Blocks []Block

// wireBlock is the JSON shape produced by the generator.
type wireBlock struct {
	Type     BlockKind      `json:"type"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	QuizData []QuizQuestion `json:"quizData,omitempty"`
}

// UnmarshalJSON decodes the tagged wire form into concrete block types.
func (b *Blocks) UnmarshalJSON(data []byte) error {
	var raw []wireBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Blocks, 0, len(raw))
	for i, w := range raw {
		blk, err := w.block()
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, blk)
	}
	*b = out
	return nil
}

// MarshalJSON encodes blocks back into the tagged wire form.
// A nil block has no kind and is rejected.
func (b Blocks) MarshalJSON() ([]byte, error) {
	raw := make([]wireBlock, 0, len(b))
	for i, blk := range b {
		if blk == nil {
			return nil, fmt.Errorf("block %d: nil block", i)
		}
		w := wireBlock{
			Type:    blk.Kind(),
			Title:   blk.Heading(),
			Content: blk.Body(),
		}
		if q, ok := blk.(Quiz); ok {
			w.QuizData = q.Questions
		}
		raw = append(raw, w)
	}
	return json.Marshal(raw)
}

func (w wireBlock) block() (Block, error) {
	text := Text{Title: w.Title, Content: w.Content}
	switch w.Type {
	case KindKeyIdea:
		return KeyIdea{text}, nil
	case KindTheory:
		return Theory{text}, nil
	case KindExample:
		return Example{text}, nil
	case KindActivity:
		return Activity{text}, nil
	case KindQuiz:
		if len(w.QuizData) == 0 {
			return nil, fmt.Errorf("quiz block %q has no questions", w.Title)
		}
		return Quiz{Text: text, Questions: w.QuizData}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", w.Type)
	}
}
