package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-skynet/localai-go/v1/localai"
	"github.com/go-skynet/localai-go/v1/observability"
)

// recordingObserver captures operation contexts for assertions.
type recordingObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(opCtx observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, opCtx)
}

func (r *recordingObserver) all() []observability.OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observability.OperationContext(nil), r.operations...)
}

// chatServer fakes the /v1/chat/completions endpoint with a fixed reply.
type chatServer struct {
	srv          *httptest.Server
	requestCount atomic.Int64
	lastRequest  atomic.Pointer[openai.ChatCompletionRequest]
}

func newChatServer(t *testing.T, reply openai.ChatCompletionMessage, finish openai.FinishReason) *chatServer {
	t.Helper()

	cs := &chatServer{}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.requestCount.Add(1)

		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		cs.lastRequest.Store(&req)

		resp := openai.ChatCompletionResponse{
			ID:      "chatcmpl-1",
			Object:  "chat.completion",
			Created: 1700000000,
			Model:   req.Model,
			Choices: []openai.ChatCompletionChoice{{Message: reply, FinishReason: finish}},
			Usage:   openai.Usage{PromptTokens: 9, CompletionTokens: 3, TotalTokens: 12},
		}

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func testConnection(url string) *localai.Config {
	return localai.FromBaseURL(url).WithAPIKey("test-key")
}

func assistantReply(content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}
}

func weatherTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "get_weather",
		Desc: "Look up the current weather for a city.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"city": {Type: schema.String, Desc: "City name", Required: true},
		}),
	}
}

func TestInvoke(t *testing.T) {
	srv := newChatServer(t, assistantReply("A llama is a camelid."), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	answer, err := client.Invoke(context.Background(), "What is a llama?")
	require.NoError(t, err)
	assert.Equal(t, "A llama is a camelid.", answer)
	assert.EqualValues(t, 1, srv.requestCount.Load())

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, DefaultTemperature, req.Temperature)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
	assert.Equal(t, "What is a llama?", req.Messages[0].Content)
}

func TestGenerate(t *testing.T) {
	srv := newChatServer(t, assistantReply("Briefly: a camelid."), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	reply, err := client.Generate(context.Background(), []*schema.Message{
		schema.SystemMessage("You answer briefly."),
		schema.UserMessage("What is a llama?"),
	})
	require.NoError(t, err)

	assert.Equal(t, schema.Assistant, reply.Role)
	assert.Equal(t, "Briefly: a camelid.", reply.Content)
	require.NotNil(t, reply.ResponseMeta)
	assert.Equal(t, "stop", reply.ResponseMeta.FinishReason)
	require.NotNil(t, reply.ResponseMeta.Usage)
	assert.Equal(t, 9, reply.ResponseMeta.Usage.PromptTokens)
	assert.Equal(t, 3, reply.ResponseMeta.Usage.CompletionTokens)
	assert.Equal(t, 12, reply.ResponseMeta.Usage.TotalTokens)

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
}

func TestGenerateOptions(t *testing.T) {
	srv := newChatServer(t, assistantReply("ok"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Generate(context.Background(),
		[]*schema.Message{schema.UserMessage("hi")},
		model.WithModel("mistral-7b-instruct"),
		model.WithTemperature(0.2),
		model.WithMaxTokens(64),
		model.WithStop([]string{"###"}),
	)
	require.NoError(t, err)

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	assert.Equal(t, "mistral-7b-instruct", req.Model)
	assert.Equal(t, float32(0.2), req.Temperature)
	assert.Equal(t, 64, req.MaxTokens)
	assert.Equal(t, []string{"###"}, req.Stop)
}

func TestGenerateEmptyInput(t *testing.T) {
	srv := newChatServer(t, assistantReply("ok"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Generate(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsEmptyMessagesError(err))
	assert.EqualValues(t, 0, srv.requestCount.Load())
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Error(t, err)
	assert.True(t, IsEmptyResponseError(err))
}

func TestGenerateServerError(t *testing.T) {
	var requestCount atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"model failed to load","type":"server_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Error(t, err)

	var apiErr *openai.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatusCode)
	assert.EqualValues(t, 1, requestCount.Load(), "a failed request must not be retried")
}

func TestGenerateToolCall(t *testing.T) {
	reply := openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleAssistant,
		ToolCalls: []openai.ToolCall{{
			ID:   "call_1",
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      "get_weather",
				Arguments: `{"city":"Quito"}`,
			},
		}},
	}
	srv := newChatServer(t, reply, openai.FinishReasonToolCalls)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	toolModel, err := client.WithTools([]*schema.ToolInfo{weatherTool()})
	require.NoError(t, err)

	msg, err := toolModel.Generate(context.Background(), []*schema.Message{
		schema.UserMessage("Weather in Quito?"),
	})
	require.NoError(t, err)

	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "call_1", msg.ToolCalls[0].ID)
	assert.Equal(t, "function", msg.ToolCalls[0].Type)
	assert.Equal(t, "get_weather", msg.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"city":"Quito"}`, msg.ToolCalls[0].Function.Arguments)
	require.NotNil(t, msg.ResponseMeta)
	assert.Equal(t, "tool_calls", msg.ResponseMeta.FinishReason)
}

func TestToolMessagesOnTheWire(t *testing.T) {
	srv := newChatServer(t, assistantReply("It is sunny."), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Generate(context.Background(), []*schema.Message{
		schema.UserMessage("Weather in Quito?"),
		{
			Role: schema.Assistant,
			ToolCalls: []schema.ToolCall{{
				ID:       "call_1",
				Type:     "function",
				Function: schema.FunctionCall{Name: "get_weather", Arguments: `{"city":"Quito"}`},
			}},
		},
		schema.ToolMessage(`{"weather":"sunny"}`, "call_1"),
	})
	require.NoError(t, err)

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	require.Len(t, req.Messages, 3)

	require.Len(t, req.Messages[1].ToolCalls, 1)
	assert.Equal(t, "call_1", req.Messages[1].ToolCalls[0].ID)
	assert.Equal(t, "get_weather", req.Messages[1].ToolCalls[0].Function.Name)

	assert.Equal(t, openai.ChatMessageRoleTool, req.Messages[2].Role)
	assert.Equal(t, "call_1", req.Messages[2].ToolCallID)
}

func TestWithTools(t *testing.T) {
	srv := newChatServer(t, assistantReply("ok"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	toolModel, err := client.WithTools([]*schema.ToolInfo{weatherTool()})
	require.NoError(t, err)

	// The copy must not tear down the shared connection.
	toolClient, ok := toolModel.(*Client)
	require.True(t, ok)
	assert.False(t, toolClient.ownsConn)

	_, err = toolModel.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	require.Len(t, req.Tools, 1)
	assert.Equal(t, openai.ToolTypeFunction, req.Tools[0].Type)
	require.NotNil(t, req.Tools[0].Function)
	assert.Equal(t, "get_weather", req.Tools[0].Function.Name)
	assert.Equal(t, "auto", req.ToolChoice)

	params, ok := req.Tools[0].Function.Parameters.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", params["type"])
	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "city")

	// The original client keeps its unbound state.
	_, err = client.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	req = srv.lastRequest.Load()
	require.NotNil(t, req)
	assert.Empty(t, req.Tools)
	assert.Nil(t, req.ToolChoice)

	_, err = client.WithTools(nil)
	assert.True(t, IsMissingToolsError(err))
}

func TestWithToolsNoParams(t *testing.T) {
	srv := newChatServer(t, assistantReply("pong"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	toolModel, err := client.WithTools([]*schema.ToolInfo{{Name: "ping", Desc: "Health probe."}})
	require.NoError(t, err)

	_, err = toolModel.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	require.Len(t, req.Tools, 1)
	params, ok := req.Tools[0].Function.Parameters.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", params["type"])
}

func TestBindTools(t *testing.T) {
	srv := newChatServer(t, assistantReply("ok"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.BindTools([]*schema.ToolInfo{weatherTool()}))

	_, err = client.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)

	req := srv.lastRequest.Load()
	require.NotNil(t, req)
	require.Len(t, req.Tools, 1)
	assert.Equal(t, "get_weather", req.Tools[0].Function.Name)
}

func TestToolChoiceMapping(t *testing.T) {
	srv := newChatServer(t, assistantReply("ok"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	toolModel, err := client.WithTools([]*schema.ToolInfo{weatherTool()})
	require.NoError(t, err)

	_, err = toolModel.Generate(context.Background(),
		[]*schema.Message{schema.UserMessage("hi")},
		model.WithToolChoice(schema.ToolChoiceForbidden))
	require.NoError(t, err)
	assert.Equal(t, "none", srv.lastRequest.Load().ToolChoice)

	_, err = toolModel.Generate(context.Background(),
		[]*schema.Message{schema.UserMessage("hi")},
		model.WithToolChoice(schema.ToolChoiceForced))
	require.NoError(t, err)

	choice, ok := srv.lastRequest.Load().ToolChoice.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "function", choice["type"])
	fn, ok := choice["function"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "get_weather", fn["name"])

	// Forcing a tool call without tools cannot be expressed on the wire.
	before := srv.requestCount.Load()
	_, err = client.Generate(context.Background(),
		[]*schema.Message{schema.UserMessage("hi")},
		model.WithToolChoice(schema.ToolChoiceForced))
	require.Error(t, err)
	assert.True(t, IsMissingToolsError(err))
	assert.EqualValues(t, before, srv.requestCount.Load())
}

func TestStream(t *testing.T) {
	chunks := []openai.ChatCompletionStreamResponse{
		{
			ID: "chatcmpl-1", Object: "chat.completion.chunk", Model: "gpt-3.5-turbo",
			Choices: []openai.ChatCompletionStreamChoice{{
				Delta: openai.ChatCompletionStreamChoiceDelta{Role: openai.ChatMessageRoleAssistant, Content: "Hel"},
			}},
		},
		{
			ID: "chatcmpl-1", Object: "chat.completion.chunk", Model: "gpt-3.5-turbo",
			Choices: []openai.ChatCompletionStreamChoice{{
				Delta: openai.ChatCompletionStreamChoiceDelta{Content: "lo"},
			}},
		},
		{
			ID: "chatcmpl-1", Object: "chat.completion.chunk", Model: "gpt-3.5-turbo",
			Choices: []openai.ChatCompletionStreamChoice{{
				FinishReason: openai.FinishReasonStop,
			}},
		},
		{
			ID: "chatcmpl-1", Object: "chat.completion.chunk", Model: "gpt-3.5-turbo",
			Choices: []openai.ChatCompletionStreamChoice{},
			Usage:   &openai.Usage{PromptTokens: 4, CompletionTokens: 2, TotalTokens: 6},
		},
	}

	var events string
	for _, chunk := range chunks {
		data, err := json.Marshal(chunk)
		require.NoError(t, err)
		events += "data: " + string(data) + "\n\n"
	}
	events += "data: [DONE]\n\n"

	var lastRequest atomic.Pointer[openai.ChatCompletionRequest]
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		lastRequest.Store(&req)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = io.WriteString(w, events)
	}))
	defer srv.Close()

	observer := &recordingObserver{}
	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.URL)))
	require.NoError(t, err)
	defer client.Close()
	client.WithObserver(observer)

	reader, err := client.Stream(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	defer reader.Close()

	var content, finish string
	var usage *schema.TokenUsage
	received := 0
	for {
		chunk, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		received++
		content += chunk.Content
		assert.Equal(t, schema.Assistant, chunk.Role)
		if chunk.ResponseMeta != nil {
			if chunk.ResponseMeta.FinishReason != "" {
				finish = chunk.ResponseMeta.FinishReason
			}
			if chunk.ResponseMeta.Usage != nil {
				usage = chunk.ResponseMeta.Usage
			}
		}
	}

	assert.Equal(t, 4, received)
	assert.Equal(t, "Hello", content)
	assert.Equal(t, "stop", finish)
	require.NotNil(t, usage)
	assert.Equal(t, 6, usage.TotalTokens)

	req := lastRequest.Load()
	require.NotNil(t, req)
	assert.True(t, req.Stream)
	require.NotNil(t, req.StreamOptions)
	assert.True(t, req.StreamOptions.IncludeUsage)

	operations := observer.all()
	require.Len(t, operations, 1)
	assert.Equal(t, "stream", operations[0].Operation)
	assert.Equal(t, 4, operations[0].Metadata["chunks"])
	assert.Equal(t, 6, operations[0].Metadata["total_tokens"])
}

func TestStreamToolCalls(t *testing.T) {
	index := 0
	chunk := openai.ChatCompletionStreamResponse{
		ID: "chatcmpl-1", Object: "chat.completion.chunk", Model: "gpt-3.5-turbo",
		Choices: []openai.ChatCompletionStreamChoice{{
			Delta: openai.ChatCompletionStreamChoiceDelta{
				Role: openai.ChatMessageRoleAssistant,
				ToolCalls: []openai.ToolCall{{
					Index:    &index,
					ID:       "call_9",
					Type:     openai.ToolTypeFunction,
					Function: openai.FunctionCall{Name: "get_weather", Arguments: `{"city":`},
				}},
			},
		}},
	}
	data, err := json.Marshal(chunk)
	require.NoError(t, err)
	events := "data: " + string(data) + "\n\ndata: [DONE]\n\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, events)
	}))
	defer srv.Close()

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	reader, err := client.Stream(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	defer reader.Close()

	chunkMsg, err := reader.Recv()
	require.NoError(t, err)
	require.Len(t, chunkMsg.ToolCalls, 1)
	require.NotNil(t, chunkMsg.ToolCalls[0].Index)
	assert.Equal(t, 0, *chunkMsg.ToolCalls[0].Index)
	assert.Equal(t, "call_9", chunkMsg.ToolCalls[0].ID)
	assert.Equal(t, `{"city":`, chunkMsg.ToolCalls[0].Function.Arguments)

	_, err = reader.Recv()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestStreamServerError(t *testing.T) {
	var requestCount atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"stream failed","type":"server_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Stream(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Error(t, err)

	var apiErr *openai.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatusCode)
	assert.EqualValues(t, 1, requestCount.Load())
}

func TestObserverNotified(t *testing.T) {
	srv := newChatServer(t, assistantReply("hi there"), openai.FinishReasonStop)

	client, err := NewClient(DefaultConfig().WithConnection(testConnection(srv.srv.URL)))
	require.NoError(t, err)
	defer client.Close()

	observer := &recordingObserver{}
	client.WithObserver(observer)

	_, err = client.Invoke(context.Background(), "hi")
	require.NoError(t, err)

	operations := observer.all()
	require.Len(t, operations, 1)
	assert.Equal(t, "chat", operations[0].Component)
	assert.Equal(t, "invoke", operations[0].Operation)
	assert.Equal(t, DefaultModel, operations[0].Resource)
	assert.Equal(t, int64(1), operations[0].Size)
	assert.NoError(t, operations[0].Error)
	assert.Equal(t, 9, operations[0].Metadata["prompt_tokens"])
	assert.Equal(t, 3, operations[0].Metadata["completion_tokens"])
}

func TestGetType(t *testing.T) {
	client, err := NewClient(DefaultConfig().WithConnection(testConnection("http://localhost:8080")))
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "LocalAI", client.GetType())
	assert.Equal(t, DefaultModel, client.Model())
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(DefaultConfig().
		WithConnection(testConnection("http://localhost:8080")).
		WithTemperature(3))
	assert.True(t, IsInvalidTemperatureError(err))

	_, err = NewClient(DefaultConfig().
		WithConnection(testConnection("http://localhost:8080")).
		WithMaxTokens(-1))
	assert.True(t, IsInvalidMaxTokensError(err))

	_, err = NewClientFromConnection(nil, nil)
	assert.True(t, IsMissingConnectionError(err))
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("LOCALAI_CHAT_MODEL", "llama-3.2-1b-instruct")
	t.Setenv("LOCALAI_CHAT_TEMPERATURE", "0.4")
	t.Setenv("LOCALAI_CHAT_MAX_TOKENS", "256")
	t.Setenv("LOCALAI_CHAT_TOP_P", "0.9")

	cfg := NewConfigFromEnv()
	assert.Equal(t, "llama-3.2-1b-instruct", cfg.Model)
	assert.Equal(t, float32(0.4), cfg.Temperature)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, float32(0.9), cfg.TopP)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Zero(t, cfg.MaxTokens)
	assert.Nil(t, cfg.Connection)
}
