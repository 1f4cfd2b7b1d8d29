package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"fleetflow/internal/logx"
	"fleetflow/internal/repository"
	"fleetflow/internal/service/dispatch"
)

type dispatchServiceIn struct {
	dig.In
	Repo       *repository.DispatchRepo
	Timeout    time.Duration
	Logger     logx.Logger
	Dispatched prometheus.Counter `name:"trips_dispatched_total"`
	Completed  prometheus.Counter `name:"trips_completed_total"`
}

func newDispatchService(in dispatchServiceIn) *dispatch.Service {
	return dispatch.NewService(in.Repo, in.Timeout, in.Logger, in.Dispatched, in.Completed)
}
