package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sashabaranov/go-openai"
)

var _ model.ToolCallingChatModel = (*Client)(nil)

// Invoke sends a single user prompt and returns the completion text. It is
// a convenience wrapper over Generate for callers that do not manage
// conversation state.
func (c *Client) Invoke(ctx context.Context, prompt string, opts ...model.Option) (string, error) {
	start := time.Now()

	msg, modelName, err := c.generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, opts...)
	c.observeOperation("invoke", modelName, time.Since(start), err, 1, usageMetadata(msg))
	if err != nil {
		return "", err
	}

	return msg.Content, nil
}

// Generate sends the conversation to the server and returns the assistant
// reply. The reply carries the server's finish reason and token usage in
// ResponseMeta; tool call requests appear in ToolCalls.
func (c *Client) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	start := time.Now()

	msg, modelName, err := c.generate(ctx, input, opts...)
	c.observeOperation("generate", modelName, time.Since(start), err, int64(len(input)), usageMetadata(msg))

	return msg, err
}

func (c *Client) generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, string, error) {
	req, err := c.buildRequest(input, opts...)
	if err != nil {
		return nil, c.cfg.Model, err
	}

	resp, err := c.conn.API().CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, req.Model, fmt.Errorf("chat: create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, req.Model, ErrEmptyResponse
	}

	choice := resp.Choices[0]
	msg := &schema.Message{
		Role:      schema.Assistant,
		Content:   choice.Message.Content,
		ToolCalls: fromOpenAIToolCalls(choice.Message.ToolCalls),
		ResponseMeta: &schema.ResponseMeta{
			FinishReason: string(choice.FinishReason),
			Usage:        toTokenUsage(resp.Usage),
		},
	}

	return msg, req.Model, nil
}

// Stream sends the conversation to the server and returns a stream of reply
// chunks, one per server-sent event. The stream ends with io.EOF; a chunk
// carrying the finish reason, and token usage when the server reports it,
// arrives before that.
//
// Closing the returned reader early cancels consumption; the underlying
// response is released either way.
func (c *Client) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	start := time.Now()

	req, err := c.buildRequest(input, opts...)
	if err != nil {
		c.observeOperation("stream", c.cfg.Model, time.Since(start), err, int64(len(input)), nil)
		return nil, err
	}
	req.Stream = true
	req.StreamOptions = &openai.StreamOptions{IncludeUsage: true}

	stream, err := c.conn.API().CreateChatCompletionStream(ctx, req)
	if err != nil {
		err = fmt.Errorf("chat: create chat completion stream: %w", err)
		c.observeOperation("stream", req.Model, time.Since(start), err, int64(len(input)), nil)
		return nil, err
	}

	reader, writer := schema.Pipe[*schema.Message](1)

	go func() {
		defer func() {
			_ = stream.Close()
			writer.Close()
		}()

		var streamErr error
		var usage *schema.TokenUsage
		chunks := 0

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				streamErr = fmt.Errorf("chat: receive stream: %w", err)
				writer.Send(nil, streamErr)
				break
			}

			msg := fromStreamChunk(resp)
			if msg == nil {
				continue
			}
			if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
				usage = msg.ResponseMeta.Usage
			}

			chunks++
			if closed := writer.Send(msg, nil); closed {
				break
			}
		}

		c.observeOperation("stream", req.Model, time.Since(start), streamErr, int64(len(input)), streamMetadata(chunks, usage))
	}()

	return reader, nil
}

// WithTools returns a copy of the client with the given tools bound. The
// receiver keeps its own binding, so one client can serve multiple agents
// with different tool sets.
func (c *Client) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	if len(tools) == 0 {
		return nil, ErrMissingTools
	}

	converted, err := toOpenAITools(tools)
	if err != nil {
		return nil, err
	}

	clone := *c
	clone.tools = tools
	clone.openaiTools = converted
	choice := schema.ToolChoiceAllowed
	clone.toolChoice = &choice
	// The original client keeps the connection; the copy must not close it.
	clone.ownsConn = false

	return &clone, nil
}

// BindTools binds the given tools to this client in place.
//
// Deprecated: use WithTools, which does not mutate shared state.
func (c *Client) BindTools(tools []*schema.ToolInfo) error {
	if len(tools) == 0 {
		return ErrMissingTools
	}

	converted, err := toOpenAITools(tools)
	if err != nil {
		return err
	}

	c.tools = tools
	c.openaiTools = converted
	choice := schema.ToolChoiceAllowed
	c.toolChoice = &choice

	return nil
}

// buildRequest assembles the wire request from the conversation, the client
// configuration, and per-call options. Per-call tools and tool choice take
// precedence over the bound ones.
func (c *Client) buildRequest(input []*schema.Message, opts ...model.Option) (openai.ChatCompletionRequest, error) {
	if len(input) == 0 {
		return openai.ChatCompletionRequest{}, ErrEmptyMessages
	}

	options := model.GetCommonOptions(&model.Options{
		Model:       &c.cfg.Model,
		Temperature: &c.cfg.Temperature,
		MaxTokens:   &c.cfg.MaxTokens,
		ToolChoice:  c.toolChoice,
	}, opts...)

	messages, err := toOpenAIMessages(input)
	if err != nil {
		return openai.ChatCompletionRequest{}, err
	}

	req := openai.ChatCompletionRequest{
		Model:       *options.Model,
		Messages:    messages,
		Temperature: *options.Temperature,
		MaxTokens:   *options.MaxTokens,
		Stop:        options.Stop,
	}
	if options.TopP != nil {
		req.TopP = *options.TopP
	} else if c.cfg.TopP > 0 {
		req.TopP = c.cfg.TopP
	}

	tools := c.openaiTools
	if options.Tools != nil {
		if tools, err = toOpenAITools(options.Tools); err != nil {
			return openai.ChatCompletionRequest{}, err
		}
	}
	if len(tools) > 0 {
		req.Tools = tools
	}

	if options.ToolChoice != nil {
		choice, err := toOpenAIToolChoice(*options.ToolChoice, tools)
		if err != nil {
			return openai.ChatCompletionRequest{}, err
		}
		req.ToolChoice = choice
	}

	return req, nil
}
