package chat

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/sashabaranov/go-openai"
)

// toOpenAIMessages converts an eino conversation into the wire format.
func toOpenAIMessages(input []*schema.Message) ([]openai.ChatCompletionMessage, error) {
	out := make([]openai.ChatCompletionMessage, 0, len(input))
	for i, msg := range input {
		if msg == nil {
			return nil, fmt.Errorf("chat: input message %d is nil", i)
		}

		converted := openai.ChatCompletionMessage{
			Role:    toOpenAIRole(msg.Role),
			Content: msg.Content,
			Name:    msg.Name,
		}
		if len(msg.ToolCalls) > 0 {
			converted.ToolCalls = toOpenAIToolCalls(msg.ToolCalls)
		}
		if msg.Role == schema.Tool {
			converted.ToolCallID = msg.ToolCallID
		}

		out = append(out, converted)
	}
	return out, nil
}

func toOpenAIRole(role schema.RoleType) string {
	switch role {
	case schema.System:
		return openai.ChatMessageRoleSystem
	case schema.User:
		return openai.ChatMessageRoleUser
	case schema.Assistant:
		return openai.ChatMessageRoleAssistant
	case schema.Tool:
		return openai.ChatMessageRoleTool
	default:
		// LocalAI accepts custom roles for templated models; pass through.
		return string(role)
	}
}

func toOpenAIToolCalls(calls []schema.ToolCall) []openai.ToolCall {
	out := make([]openai.ToolCall, len(calls))
	for i, call := range calls {
		out[i] = openai.ToolCall{
			Index: call.Index,
			ID:    call.ID,
			Type:  openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		}
	}
	return out
}

func fromOpenAIToolCalls(calls []openai.ToolCall) []schema.ToolCall {
	if len(calls) == 0 {
		return nil
	}

	out := make([]schema.ToolCall, len(calls))
	for i, call := range calls {
		out[i] = schema.ToolCall{
			Index: call.Index,
			ID:    call.ID,
			Type:  string(call.Type),
			Function: schema.FunctionCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		}
	}
	return out
}

// toOpenAITools converts eino tool descriptions into wire form. Parameter
// schemas come from the tool's ParamsOneOf; a tool without parameters gets
// an empty object schema, which every OpenAI-compatible server accepts.
func toOpenAITools(tools []*schema.ToolInfo) ([]openai.Tool, error) {
	out := make([]openai.Tool, 0, len(tools))
	for i, tool := range tools {
		if tool == nil {
			return nil, fmt.Errorf("chat: tool %d is nil", i)
		}

		def := &openai.FunctionDefinition{
			Name:        tool.Name,
			Description: tool.Desc,
		}
		if tool.ParamsOneOf != nil {
			params, err := tool.ParamsOneOf.ToOpenAPIV3()
			if err != nil {
				return nil, fmt.Errorf("chat: convert parameters of tool %q: %w", tool.Name, err)
			}
			def.Parameters = params
		} else {
			def.Parameters = openapi3.NewObjectSchema()
		}

		out = append(out, openai.Tool{Type: openai.ToolTypeFunction, Function: def})
	}
	return out, nil
}

// toOpenAIToolChoice maps an eino tool choice onto the wire format. A forced
// choice with exactly one tool names that tool so the server cannot pick
// another one.
func toOpenAIToolChoice(choice schema.ToolChoice, tools []openai.Tool) (any, error) {
	switch choice {
	case schema.ToolChoiceForbidden:
		return "none", nil
	case schema.ToolChoiceAllowed:
		return "auto", nil
	case schema.ToolChoiceForced:
		if len(tools) == 0 {
			return nil, fmt.Errorf("%w: tool choice is forced", ErrMissingTools)
		}
		if len(tools) == 1 {
			return openai.ToolChoice{
				Type:     openai.ToolTypeFunction,
				Function: openai.ToolFunction{Name: tools[0].Function.Name},
			}, nil
		}
		return "required", nil
	default:
		return nil, fmt.Errorf("chat: unknown tool choice %q", choice)
	}
}

// fromStreamChunk converts one server-sent event into a message chunk. A
// final usage-only event (empty choices) becomes a chunk carrying just the
// token usage; events with neither content nor metadata yield nil.
func fromStreamChunk(resp openai.ChatCompletionStreamResponse) *schema.Message {
	if len(resp.Choices) == 0 {
		if resp.Usage == nil {
			return nil
		}
		return &schema.Message{
			Role:         schema.Assistant,
			ResponseMeta: &schema.ResponseMeta{Usage: toTokenUsage(*resp.Usage)},
		}
	}

	choice := resp.Choices[0]
	msg := &schema.Message{
		Role:      schema.Assistant,
		Content:   choice.Delta.Content,
		ToolCalls: fromOpenAIToolCalls(choice.Delta.ToolCalls),
	}
	if choice.FinishReason != "" || resp.Usage != nil {
		msg.ResponseMeta = &schema.ResponseMeta{FinishReason: string(choice.FinishReason)}
		if resp.Usage != nil {
			msg.ResponseMeta.Usage = toTokenUsage(*resp.Usage)
		}
	}
	return msg
}

func toTokenUsage(usage openai.Usage) *schema.TokenUsage {
	return &schema.TokenUsage{
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}
}

// usageMetadata extracts observer metadata from a reply's response meta.
func usageMetadata(msg *schema.Message) map[string]interface{} {
	if msg == nil || msg.ResponseMeta == nil || msg.ResponseMeta.Usage == nil {
		return nil
	}
	return map[string]interface{}{
		"finish_reason":     msg.ResponseMeta.FinishReason,
		"prompt_tokens":     msg.ResponseMeta.Usage.PromptTokens,
		"completion_tokens": msg.ResponseMeta.Usage.CompletionTokens,
		"total_tokens":      msg.ResponseMeta.Usage.TotalTokens,
	}
}

// streamMetadata builds observer metadata for a finished stream.
func streamMetadata(chunks int, usage *schema.TokenUsage) map[string]interface{} {
	metadata := map[string]interface{}{"chunks": chunks}
	if usage != nil {
		metadata["prompt_tokens"] = usage.PromptTokens
		metadata["completion_tokens"] = usage.CompletionTokens
		metadata["total_tokens"] = usage.TotalTokens
	}
	return metadata
}
