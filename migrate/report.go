package migrate

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Codec serialises migration status reports for the CLI and for tooling.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	Name() string
}

// JSONCodec encodes reports as indented JSON.
type JSONCodec struct{}

// Encode implements Codec.
func (*JSONCodec) Encode(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

// Decode implements Codec.
func (*JSONCodec) Decode(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name implements Codec.
func (*JSONCodec) Name() string { return "json" }

// YAMLCodec encodes reports as YAML.
type YAMLCodec struct{}

// Encode implements Codec.
func (*YAMLCodec) Encode(v any) ([]byte, error) { return yaml.Marshal(v) }

// Decode implements Codec.
func (*YAMLCodec) Decode(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name implements Codec.
func (*YAMLCodec) Name() string { return "yaml" }

// TOMLCodec encodes reports as TOML.
type TOMLCodec struct{}

// Encode implements Codec.
func (*TOMLCodec) Encode(v any) ([]byte, error) { return toml.Marshal(v) }

// Decode implements Codec.
func (*TOMLCodec) Decode(data []byte, v any) error { return toml.Unmarshal(data, v) }

// Name implements Codec.
func (*TOMLCodec) Name() string { return "toml" }

// MsgpackCodec encodes reports as MessagePack.
type MsgpackCodec struct{}

// Encode implements Codec.
func (*MsgpackCodec) Encode(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Decode implements Codec.
func (*MsgpackCodec) Decode(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Name implements Codec.
func (*MsgpackCodec) Name() string { return "msgpack" }

// CodecByName resolves a codec from its CLI name.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "json", "":
		return &JSONCodec{}, nil
	case "yaml", "yml":
		return &YAMLCodec{}, nil
	case "toml":
		return &TOMLCodec{}, nil
	case "msgpack":
		return &MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

// Report wraps a status listing for serialisation.
type Report struct {
	Mode    string  `json:"mode" yaml:"mode" toml:"mode" msgpack:"mode"`
	Entries []Entry `json:"entries" yaml:"entries" toml:"entries" msgpack:"entries"`
}
