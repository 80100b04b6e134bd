package drawlib

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// wireCommand is one record of the command wire format: a two-element
// CBOR array [tag, [args...]].
type wireCommand struct {
	_    struct{} `cbor:",toarray"`
	Tag  uint64
	Args []float64
}

// wireEncMode stores floats in the shortest form that round-trips exactly.
var wireEncMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{ShortestFloat: cbor.ShortestFloat16}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// MarshalCommands encodes a command stream in the wire format: a CBOR
// array of [tag, [args...]] records, where tag is the CommandKind.
func MarshalCommands(cmds []PathCommand) ([]byte, error) {
	if err := Validate(cmds); err != nil {
		return nil, err
	}
	records := make([]wireCommand, len(cmds))
	for i, cmd := range cmds {
		records[i] = wireCommand{Tag: uint64(cmd.Kind()), Args: cmd.Args()}
	}
	data, err := wireEncMode.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("drawlib: encode commands: %w", err)
	}
	return data, nil
}

// UnmarshalCommands decodes a command stream produced by MarshalCommands.
// Records whose argument count does not match their tag fail with a
// *MalformedCommandError carrying the record index.
func UnmarshalCommands(data []byte) ([]PathCommand, error) {
	var records []wireCommand
	if err := cbor.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("drawlib: decode commands: %w", err)
	}

	cmds := make([]PathCommand, 0, len(records))
	for i, rec := range records {
		kind := CommandKind(math.MaxUint8)
		if rec.Tag < math.MaxUint8 {
			kind = CommandKind(rec.Tag)
		}
		cmd, err := newPathCommand(i, kind, rec.Args)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
