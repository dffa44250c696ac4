// Package mediator routes chat messages through a central room so users
// never reference each other directly.
package mediator

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// ChatMediator delivers a message from one user to the others.
type ChatMediator interface {
	SendMessage(message string, from User)
}

// User is a colleague that talks only to its mediator.
type User interface {
	Name() string
	Send(message string)
	Receive(message string)
}

// ChatRoom broadcasts to every registered user except the sender.
type ChatRoom struct {
	users []User
}

// AddUser registers u with the room.
func (r *ChatRoom) AddUser(u User) { r.users = append(r.users, u) }

// SendMessage delivers message to every registered user except from.
func (r *ChatRoom) SendMessage(message string, from User) {
	for _, u := range r.users {
		if u != from {
			u.Receive(message)
		}
	}
}

// ChatUser prints what it sends and receives.
type ChatUser struct {
	name     string
	mediator ChatMediator
	out      io.Writer
}

// NewChatUser returns a user that talks through m and prints to out.
func NewChatUser(name string, m ChatMediator, out io.Writer) *ChatUser {
	return &ChatUser{name: name, mediator: m, out: out}
}

// Name identifies the user in printed lines.
func (u *ChatUser) Name() string { return u.name }

// Send prints the outgoing message and hands it to the mediator.
func (u *ChatUser) Send(message string) {
	fmt.Fprintf(u.out, "%s sending message: %s\n", u.name, message)
	u.mediator.SendMessage(message, u)
}

// Receive prints an incoming message.
func (u *ChatUser) Receive(message string) {
	fmt.Fprintf(u.out, "%s received message: %s\n", u.name, message)
}

// Demo lets one user talk to a room of four.
var Demo = demo.Define("mediator", demo.Behavioral,
	"Route communication between colleagues through a central mediator",
	func(w io.Writer) error {
		room := &ChatRoom{}

		user1 := NewChatUser("User 1", room, w)
		user2 := NewChatUser("User 2", room, w)
		user3 := NewChatUser("User 3", room, w)

		room.AddUser(user1)
		room.AddUser(user2)
		room.AddUser(user3)

		user1.Send("Hello, everyone!")
		user2.Send("Hi, User 1!")
		return nil
	})
