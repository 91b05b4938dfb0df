package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tharlwin/nitroshare-go/internal/coordinator"
	"github.com/Tharlwin/nitroshare-go/internal/notify"
	"github.com/Tharlwin/nitroshare-go/internal/transfer"
)

// stubTransfer connects and then stays active until it is asked to stop.
type stubTransfer struct {
	remote string
	stop   chan struct{}
	once   sync.Once
}

func newStubTransfer(remote string) *stubTransfer {
	return &stubTransfer{remote: remote, stop: make(chan struct{})}
}

func (s *stubTransfer) Direction() transfer.Direction { return transfer.Send }

func (s *stubTransfer) RemoteName() string { return s.remote }

func (s *stubTransfer) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *stubTransfer) Run(ctx context.Context, events chan<- transfer.Event) {
	events <- transfer.Event{Kind: transfer.EventConnect}
	select {
	case <-s.stop:
	case <-ctx.Done():
	}
	events <- transfer.Event{Kind: transfer.EventError, Message: "transfer was stopped"}
	events <- transfer.Event{Kind: transfer.EventFinish}
}

type listResponse struct {
	Total     int            `json:"total"`
	Transfers []TransferItem `json:"transfers"`
}

func setupRouter(t *testing.T) (*gin.Engine, *coordinator.Service, []notify.ID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := coordinator.NewService(coordinator.Options{})
	ids := []notify.ID{
		svc.Start(newStubTransfer("Phone")),
		svc.Start(newStubTransfer("Laptop")),
	}
	t.Cleanup(func() {
		for _, id := range ids {
			svc.StopTransfer(id)
		}
	})
	return NewRouter(svc), svc, ids
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListTransfers(t *testing.T) {
	router, _, ids := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/transfers")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	require.Len(t, resp.Transfers, 2)
	assert.Equal(t, int64(ids[0]), resp.Transfers[0].ID)
	assert.Equal(t, "Phone", resp.Transfers[0].Remote)
	assert.Equal(t, "send", resp.Transfers[0].Direction)
	assert.Equal(t, "Laptop", resp.Transfers[1].Remote)
}

func TestGetTransfer(t *testing.T) {
	router, _, ids := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/transfers/"+itoa(ids[0]))
	require.Equal(t, http.StatusOK, w.Code)

	var item TransferItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, int64(ids[0]), item.ID)
	assert.Equal(t, "Phone", item.Remote)
}

func TestGetTransferUnknown(t *testing.T) {
	router, _, _ := setupRouter(t)
	w := doRequest(router, http.MethodGet, "/transfers/424242")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransferBadID(t *testing.T) {
	router, _, _ := setupRouter(t)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, http.MethodGet, "/transfers/abc").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, http.MethodPost, "/transfers/-1/stop").Code)
}

func TestStopTransfer(t *testing.T) {
	router, svc, ids := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/transfers/"+itoa(ids[0])+"/stop")
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool { return svc.TransferCount() == 1 },
		2*time.Second, 10*time.Millisecond)
	_, found := svc.Transfer(ids[0])
	assert.False(t, found)
}

func TestStopTransferUnknownIsAccepted(t *testing.T) {
	router, svc, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/transfers/424242/stop")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 2, svc.TransferCount())
}

func itoa(id notify.ID) string {
	return strconv.FormatInt(int64(id), 10)
}
