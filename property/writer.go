package property

import "github.com/automoto/lodestone/surface"

// writer is the render variant chosen once per property from its Kind.
type writer interface {
	write(sink surface.Sink, el surface.Element, key, value string)
}

type transformWriter struct{}

func (transformWriter) write(sink surface.Sink, el surface.Element, key, value string) {
	sink.SetTransform(el, surface.MergeTransform(sink.Transform(el), key, value))
}

type styleWriter struct{}

func (styleWriter) write(sink surface.Sink, el surface.Element, key, value string) {
	sink.SetStyle(el, key, value)
}

type attributeWriter struct{}

func (attributeWriter) write(sink surface.Sink, el surface.Element, key, value string) {
	sink.SetAttribute(el, key, value)
}

// writerFor returns nil for Typeless; those properties are headless.
func writerFor(k Kind) writer {
	switch k {
	case Transform:
		return transformWriter{}
	case Style:
		return styleWriter{}
	case Attribute:
		return attributeWriter{}
	}
	return nil
}
