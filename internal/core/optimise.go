package core

// Optimise applies a set of peephole fusion rules to a fixed point: a
// single pass folds runs of Mod/Move and collapses clear-loops into
// SetValue(0), but a rewrite inside a nested Loop can expose a new
// fusion opportunity at the parent level, so the whole pass repeats
// until a pass changes nothing.
func Optimise(ops []Op) []Op {
	for {
		next := optimisePass(ops)
		if equalOps(ops, next) {
			return next
		}
		ops = next
	}
}

// optimisePass builds a new sequence by appending each op in turn,
// fusing onto the previous op where possible. Nested Loop bodies are
// fully fixed-pointed before the Loop itself is appended (or collapsed
// into SetValue(0)).
func optimisePass(ops []Op) []Op {
	result := make([]Op, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case OpMod:
			appendMod(&result, op.Mod)
		case OpMove:
			appendMove(&result, op.Move)
		case OpSetValue:
			appendSetValue(&result, op.Value)
		case OpGetInput, OpPrintOutput:
			result = append(result, op)
		case OpLoop:
			body := Optimise(op.Body)
			if isClearLoop(body) {
				appendSetValue(&result, 0)
			} else {
				result = append(result, Loop(body))
			}
		}
	}
	return result
}

// isClearLoop reports whether body is exactly a single Mod(+1) or
// Mod(-1): a [-] or [+] pattern, which always zeroes the current cell
// regardless of its starting value.
func isClearLoop(body []Op) bool {
	return len(body) == 1 && body[0].Kind == OpMod && (body[0].Mod == 1 || body[0].Mod == -1)
}

// appendMod fuses v into a trailing Mod or SetValue, or appends a new
// Mod node. Go's fixed-width int8/uint8 arithmetic already wraps mod
// 256, so cell values wrap with no extra masking.
func appendMod(result *[]Op, v int8) {
	r := *result
	if len(r) > 0 {
		last := &r[len(r)-1]
		switch last.Kind {
		case OpMod:
			last.Mod += v
			return
		case OpSetValue:
			last.Value += uint8(v)
			return
		}
	}
	*result = append(r, Mod(v))
}

// appendMove fuses v into a trailing Move, or appends a new Move node.
// A fused result of exactly zero is kept, not dropped: it still flushes
// and reloads the cached cell value, which is observable if the tape's
// cell_at has side effects (e.g. growing a vector).
func appendMove(result *[]Op, v int32) {
	r := *result
	if len(r) > 0 && r[len(r)-1].Kind == OpMove {
		r[len(r)-1].Move += v
		return
	}
	*result = append(r, Move(v))
}

// appendSetValue overwrites a trailing Mod or SetValue (either is made
// irrelevant by an unconditional overwrite), or appends a new
// SetValue node.
func appendSetValue(result *[]Op, v uint8) {
	r := *result
	if len(r) > 0 {
		switch r[len(r)-1].Kind {
		case OpMod, OpSetValue:
			r[len(r)-1] = SetValue(v)
			return
		}
	}
	*result = append(r, SetValue(v))
}
