package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPIGateway struct {
	mock.Mock
}

func (m *mockAPIGateway) PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error) {
	args := m.Called(ctx, *params.ConnectionId, params.Data)
	out, _ := args.Get(0).(*apigatewaymanagementapi.PostToConnectionOutput)
	return out, args.Error(1)
}

type mockConnections struct {
	mock.Mock
}

func (m *mockConnections) GetAllConnections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockConnections) AddConnection(ctx context.Context, connectionID string) error {
	return m.Called(ctx, connectionID).Error(0)
}

func (m *mockConnections) RemoveConnection(ctx context.Context, connectionID string) error {
	return m.Called(ctx, connectionID).Error(0)
}

func TestDefaultPublisherPublish(t *testing.T) {
	msg := Message{Type: MessageTypeNoticeUpdated, Payload: NoticePayload{Message: "x"}}

	t.Run("Broadcasts And Drops Stale", func(t *testing.T) {
		conns := new(mockConnections)
		conns.On("GetAllConnections", mock.Anything).Return([]string{"live", "gone", "broken"}, nil)
		conns.On("RemoveConnection", mock.Anything, "gone").Return(nil).Once()

		api := new(mockAPIGateway)
		api.On("PostToConnection", mock.Anything, "live", mock.MatchedBy(func(data []byte) bool {
			var decoded map[string]interface{}
			return json.Unmarshal(data, &decoded) == nil && decoded["type"] == "noticeUpdated"
		})).Return(&apigatewaymanagementapi.PostToConnectionOutput{}, nil)
		api.On("PostToConnection", mock.Anything, "gone", mock.Anything).Return(nil, &apigwtypes.GoneException{})
		api.On("PostToConnection", mock.Anything, "broken", mock.Anything).Return(nil, errors.New("throttled"))

		p := NewPublisherWithClient(api, conns, conns)
		err := p.Publish(context.Background(), msg)

		require.NoError(t, err)
		api.AssertExpectations(t)
		conns.AssertExpectations(t)
		conns.AssertNotCalled(t, "RemoveConnection", mock.Anything, "broken")
	})

	t.Run("Connection Lookup Fails", func(t *testing.T) {
		conns := new(mockConnections)
		conns.On("GetAllConnections", mock.Anything).Return(nil, errors.New("boom"))

		p := NewPublisherWithClient(new(mockAPIGateway), conns, conns)
		err := p.Publish(context.Background(), msg)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get all connections")
	})
}
