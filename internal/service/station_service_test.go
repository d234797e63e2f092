package service

import (
	"StationAdmin/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStationService_Probe_PassesRowsThrough(t *testing.T) {
	m := new(mockStationRepo)
	svc := NewStationService(m)
	rows := []map[string]any{{"id": 1}}
	m.On("ProbeOne", mock.Anything).Return(rows, nil).Once()

	res := svc.Probe(context.Background())
	assert.Equal(t, rows, res.Data)
	assert.NoError(t, res.Error)
	m.AssertExpectations(t)
}

func TestStationService_Probe_PassesErrorThrough(t *testing.T) {
	m := new(mockStationRepo)
	svc := NewStationService(m)
	boom := errors.New("relation does not exist")
	m.On("ProbeOne", mock.Anything).Return(nil, boom).Once()

	res := svc.Probe(context.Background())
	assert.Nil(t, res.Data)
	assert.Same(t, boom, res.Error)
	m.AssertExpectations(t)
}

func TestStationService_List_UsesLimit(t *testing.T) {
	m := new(mockStationRepo)
	svc := NewStationService(m)
	m.On("List", mock.Anything, StationListLimit).Return([]model.Station{{ID: 1, Name: "Central"}}, nil).Once()

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	m.AssertExpectations(t)
}
