package wsserver

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mo-shahab/bracket-pong/game"
	"github.com/mo-shahab/bracket-pong/scores"
)

// message types
const (
	MsgGameState = "game_state"
	MsgScore     = "score"
	MsgError     = "error"
)

// EncodeGameState wraps a snapshot in a protobuf Struct
func EncodeGameState(s game.GameStateSnapshot) ([]byte, error) {
	paddles := make([]any, 0, len(s.Paddles))
	for _, p := range s.Paddles {
		paddles = append(paddles, map[string]any{
			"x":           p.X,
			"y":           p.Y,
			"half_height": p.HalfHeight,
		})
	}

	return encode(map[string]any{
		"type":  MsgGameState,
		"state": s.State.String(),
		"ball": map[string]any{
			"x": s.Ball.X,
			"y": s.Ball.Y,
		},
		"paddles": paddles,
		"scores": map[string]any{
			"left":  s.Scores.Left,
			"right": s.Scores.Right,
		},
	})
}

// EncodeScore announces a point
func EncodeScore(total scores.Scores, d scores.Delta) ([]byte, error) {
	return encode(map[string]any{
		"type":       MsgScore,
		"scored":     d.Scorer(),
		"leftScore":  total.Left,
		"rightScore": total.Right,
	})
}

func EncodeError(text string) ([]byte, error) {
	return encode(map[string]any{
		"type":  MsgError,
		"error": text,
	})
}

func encode(fields map[string]any) ([]byte, error) {
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build %v message: %w", fields["type"], err)
	}
	message, err := proto.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal %v message: %w", fields["type"], err)
	}
	return message, nil
}

// DecodeMessage turns a binary message back into plain Go values. Numbers
// come back as float64.
func DecodeMessage(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty message")
	}
	st := &structpb.Struct{}
	if err := proto.Unmarshal(b, st); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	return st.AsMap(), nil
}
