package structural

import (
	"strings"

	"patternlab/internal/output"
)

// Message formats outgoing message text.
type Message interface {
	Text() string
}

// PlainMessage is the undecorated message.
type PlainMessage string

func (m PlainMessage) Text() string { return string(m) }

// Greeting prefixes the wrapped message with a salutation.
type Greeting struct {
	Message
	Name string
}

func (g Greeting) Text() string { return "Hello " + g.Name + ", " + g.Message.Text() }

// Signature appends a sender signature.
type Signature struct {
	Message
	Sender string
}

func (s Signature) Text() string { return s.Message.Text() + " -- " + s.Sender }

// Urgent upper-cases the wrapped message.
type Urgent struct {
	Message
}

func (u Urgent) Text() string { return strings.ToUpper(u.Message.Text()) }

func demoDecorator(p *output.Printer) error {
	var message Message = PlainMessage("your order has shipped")
	p.Linef("plain: %s", message.Text())

	message = Greeting{Message: message, Name: "Alice"}
	p.Linef("greeting: %s", message.Text())

	message = Signature{Message: message, Sender: "Support"}
	p.Linef("signed: %s", message.Text())

	p.Linef("urgent: %s", Urgent{Message: message}.Text())
	return nil
}
