// Package service implements the assistant chains: chitchat, FAQ
// answering, and natural-language product search.
package service

import "errors"

// Stage failure kinds. Chains wrap stage errors with one of these so the
// outer boundary can log what happened; callers of Answer only ever see
// the fixed user-safe strings below.
var (
	ErrGeneration = errors.New("model failed to produce SQL")
	ErrUnsafeSQL  = errors.New("unsafe SQL detected")
	ErrExecution  = errors.New("query execution failed")
	ErrRetrieval  = errors.New("faq retrieval failed")
	ErrService    = errors.New("model service call failed")
)

// Fixed user-facing messages. Internal error detail is logged, never
// returned.
const (
	MsgSearchApology = "Sorry, I couldn't process your request at the moment."
	MsgNoProducts    = "No products match your request."

	MsgFAQNoMatch = "I don't have specific information about that. " +
		"Please contact our support team or try rephrasing your question."
	MsgFAQTrouble = "I'm having trouble accessing our FAQ information right now. " +
		"Please try again later."
	MsgFAQApology = "I apologize, but I encountered an error while answering your question. " +
		"Please try again."

	MsgChitchatApology = "I'm sorry, I ran into an error. Please try again."
)
