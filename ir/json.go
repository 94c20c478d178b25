package ir

import "encoding/json"

// JSON serialization support for descriptors.
// All descriptors include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for NamedDescriptor.
func (d *NamedDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind       string           `json:"kind"`
		Namespace  string           `json:"namespace,omitempty"`
		Name       string           `json:"name"`
		Module     string           `json:"module"`
		Base       TypeDescriptor   `json:"base,omitempty"`
		Interfaces []string         `json:"interfaces,omitempty"`
		Forward    *ForwardRedirect `json:"forwardedTo,omitempty"`
	}{
		Kind:       "named",
		Namespace:  d.Namespace,
		Name:       d.Simple,
		Module:     d.Origin,
		Base:       d.Base,
		Interfaces: d.Interfaces,
		Forward:    d.Forward,
	})
}

// MarshalJSON implements json.Marshaler for NestedDescriptor.
func (d *NestedDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind       string           `json:"kind"`
		Declaring  TypeDescriptor   `json:"declaring"`
		Name       string           `json:"name"`
		Base       TypeDescriptor   `json:"base,omitempty"`
		Interfaces []string         `json:"interfaces,omitempty"`
		Forward    *ForwardRedirect `json:"forwardedTo,omitempty"`
	}{
		Kind:       "nested",
		Declaring:  d.Declaring,
		Name:       d.Simple,
		Base:       d.Base,
		Interfaces: d.Interfaces,
		Forward:    d.Forward,
	})
}

// MarshalJSON implements json.Marshaler for ArrayDescriptor.
func (d *ArrayDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "array",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for GenericDescriptor.
func (d *GenericDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind       string           `json:"kind"`
		Definition TypeDescriptor   `json:"definition"`
		Args       []TypeDescriptor `json:"args"`
		Base       TypeDescriptor   `json:"base,omitempty"`
	}{
		Kind:       "generic",
		Definition: d.Definition,
		Args:       d.Args,
		Base:       d.Base,
	})
}

// MarshalJSON implements json.Marshaler for TypeParameterDescriptor.
func (d *TypeParameterDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind      string `json:"kind"`
		ParamName string `json:"paramName"`
	}{
		Kind:      "typeParameter",
		ParamName: d.ParamName,
	})
}

// MarshalJSON implements json.Marshaler for ForwardRedirect.
func (f ForwardRedirect) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Module)
}
