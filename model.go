package okra

import (
	"fmt"
	"strings"
)

// Model is any record type with a stable table name.
type Model interface {
	TableName() string
}

// Node is a record type stored in its own table, with an id field typed as a
// record id of itself. Embed NodeMarker to satisfy the marker.
type Node interface {
	Model
	isNode()
}

// Edge is a record type whose identity is an in/out endpoint pair. Embed
// EdgeMarker to satisfy the marker.
type Edge interface {
	Model
	isEdge()
}

// Object is a nested record type: no table, no id. Embed ObjectMarker.
type Object interface {
	isObject()
}

// NodeMarker marks a struct as a Node when embedded.
type NodeMarker struct{}

func (NodeMarker) isNode() {}

// EdgeMarker marks a struct as an Edge when embedded.
type EdgeMarker struct{}

func (EdgeMarker) isEdge() {}

// ObjectMarker marks a struct as an Object when embedded.
type ObjectMarker struct{}

func (ObjectMarker) isObject() {}

// RelationType classifies a model field.
type RelationType int

const (
	// RelationNone is a plain scalar or typed value field.
	RelationNone RelationType = iota
	// RelationLinkOne is a single record reference.
	RelationLinkOne
	// RelationLinkSelf is a single reference to the same table.
	RelationLinkSelf
	// RelationLinkMany is an array of record references.
	RelationLinkMany
	// RelationNestObject is an embedded object.
	RelationNestObject
	// RelationNestArray is an array of embedded objects.
	RelationNestArray
	// RelationRelate is a graph alias ->edge->node; never serialised.
	RelationRelate
)

func (r RelationType) String() string {
	switch r {
	case RelationLinkOne:
		return "link_one"
	case RelationLinkSelf:
		return "link_self"
	case RelationLinkMany:
		return "link_many"
	case RelationNestObject:
		return "nest_object"
	case RelationNestArray:
		return "nest_array"
	case RelationRelate:
		return "relate"
	default:
		return "scalar"
	}
}

// InferFieldType maps a Go type name to its SurrealQL field type. Explicit
// `type` tags take precedence over inference; a slice with no usable inner
// type is a hard error demanding one.
func InferFieldType(goType string) (string, error) {
	if rest, ok := strings.CutPrefix(goType, "*"); ok {
		inner, err := InferFieldType(rest)
		if err != nil {
			return "", err
		}
		return "option<" + inner + ">", nil
	}
	if rest, ok := strings.CutPrefix(goType, "[]"); ok {
		if rest == "byte" || rest == "uint8" {
			return "bytes", nil
		}
		if rest == "any" || rest == "interface {}" || rest == "interface{}" {
			return "", fmt.Errorf("cannot infer element type of %q; declare an explicit type tag", goType)
		}
		inner, err := InferFieldType(rest)
		if err != nil {
			return "", err
		}
		return "array<" + inner + ">", nil
	}
	switch goType {
	case "string":
		return "string", nil
	case "bool":
		return "bool", nil
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return "int", nil
	case "float32", "float64":
		return "float", nil
	case "time.Time", "models.CustomDateTime":
		return "datetime", nil
	case "time.Duration", "models.CustomDuration":
		return "duration", nil
	case "uuid.UUID", "models.UUID":
		return "uuid", nil
	case "models.RecordID":
		return "record", nil
	case "models.GeometryPoint":
		return "geometry(point)", nil
	case "models.GeometryLine":
		return "geometry(line)", nil
	case "models.GeometryPolygon":
		return "geometry(polygon)", nil
	case "models.GeometryMultiPoint":
		return "geometry(multipoint)", nil
	case "models.GeometryMultiLine":
		return "geometry(multiline)", nil
	case "models.GeometryMultiPolygon":
		return "geometry(multipolygon)", nil
	case "models.GeometryCollection":
		return "geometry(collection)", nil
	case "any", "interface {}", "interface{}":
		return "any", nil
	}
	if strings.HasPrefix(goType, "okra.SurrealID[") || strings.HasPrefix(goType, "SurrealID[") {
		return "record", nil
	}
	if strings.HasPrefix(goType, "map[") {
		return "object", nil
	}
	// Remaining named types are treated as embedded objects.
	return "object", nil
}
