package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/encore/internal/mocks"
	"github.com/zjrosen/encore/internal/seating"
)

func TestServer_StartAndStop(t *testing.T) {
	mockBO := mocks.NewMockBoxOffice(t)
	mockBO.EXPECT().ListSeats(mock.Anything).Return([]seating.Seat{}, nil)
	mockBO.EXPECT().Capacity().Return(40)

	srv, err := NewServer(ServerConfig{
		Addr:      "localhost:0",
		BoxOffice: mockBO,
	})
	require.NoError(t, err)
	require.NotZero(t, srv.Port())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	url := fmt.Sprintf("http://localhost:%d/health", srv.Port())
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.ErrorIs(t, <-errCh, http.ErrServerClosed)
}
