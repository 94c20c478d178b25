package ir

// ArrayDescriptor represents a single-dimensional array of Element.
// Arrays of arrays nest: ArrayOf(ArrayOf(x)) is x[][].
type ArrayDescriptor struct {
	// Element is the array element type.
	Element TypeDescriptor
}

// Kind returns KindArray.
func (d *ArrayDescriptor) Kind() DescriptorKind { return KindArray }

// Name returns the element name followed by "[]".
func (d *ArrayDescriptor) Name() string { return d.Element.Name() + "[]" }

// FullName returns the element full name followed by "[]".
func (d *ArrayDescriptor) FullName() string { return d.Element.FullName() + "[]" }

// Module returns the element's module.
func (d *ArrayDescriptor) Module() string { return d.Element.Module() }

func (*ArrayDescriptor) sealed() {}

// ArrayOf returns an ArrayDescriptor for element.
func ArrayOf(element TypeDescriptor) *ArrayDescriptor {
	return &ArrayDescriptor{Element: element}
}

// GenericDescriptor represents an instantiation of a generic definition.
type GenericDescriptor struct {
	// Definition is the open generic definition (a NamedDescriptor or
	// NestedDescriptor whose name carries an arity suffix).
	Definition TypeDescriptor

	// Args are the type arguments in declaration order.
	Args []TypeDescriptor

	// Base overrides the definition's base type with the substituted one.
	// nil means the definition's base is used.
	Base TypeDescriptor
}

// Kind returns KindGeneric.
func (d *GenericDescriptor) Kind() DescriptorKind { return KindGeneric }

// Name returns the definition's name.
func (d *GenericDescriptor) Name() string { return d.Definition.Name() }

// FullName returns the definition's full name.
func (d *GenericDescriptor) FullName() string { return d.Definition.FullName() }

// Module returns the definition's module.
func (d *GenericDescriptor) Module() string { return d.Definition.Module() }

func (*GenericDescriptor) sealed() {}

// Generic returns a GenericDescriptor instantiating definition with args.
func Generic(definition TypeDescriptor, args ...TypeDescriptor) *GenericDescriptor {
	return &GenericDescriptor{Definition: definition, Args: args}
}

// TypeParameterDescriptor represents an unbound generic parameter.
// Canonical names cannot be produced for descriptors that contain one.
type TypeParameterDescriptor struct {
	// ParamName is the parameter name (e.g., "T", "TKey").
	ParamName string
}

// Kind returns KindTypeParameter.
func (d *TypeParameterDescriptor) Kind() DescriptorKind { return KindTypeParameter }

// Name returns the parameter name.
func (d *TypeParameterDescriptor) Name() string { return d.ParamName }

// FullName returns the empty string; parameters have no qualified name.
func (d *TypeParameterDescriptor) FullName() string { return "" }

// Module returns the empty string.
func (d *TypeParameterDescriptor) Module() string { return "" }

func (*TypeParameterDescriptor) sealed() {}

// TypeParam returns a TypeParameterDescriptor.
func TypeParam(name string) *TypeParameterDescriptor {
	return &TypeParameterDescriptor{ParamName: name}
}
