// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/host"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/retry"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
)

type ClientServices struct {
	AppInfoService AppInfoService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
	Queue          OfflineQueue
	State          SyncStateStore

	DeviceID string
}

// NewClientServices resolves the device id and the remote location from
// persisted state and wires the sync engine. A nil writer makes the host
// read-only; cfg.Host.WriteBack decides whether merges use it.
func NewClientServices(
	ctx context.Context,
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	reader host.TreeReader,
	writer host.TreeWriter,
	logger *logger.Logger,
) (*ClientServices, error) {
	validator, err := validators.NewEnvelopeValidator()
	if err != nil {
		return nil, fmt.Errorf("create envelope validator: %w", err)
	}

	state := NewSyncStateStore(storages.StateRepository, logger)
	deviceID, err := state.DeviceID(ctx, cfg.App.DeviceID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("resolve device id: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, deviceID)
	if err != nil {
		return nil, err
	}

	location := adapter.NewRemoteLocation(cfg.Remote)
	if location.GistID == "" {
		if location.GistID, err = state.GistID(ctx); err != nil {
			return nil, fmt.Errorf("load gist id: %w", err)
		}
	}

	queue := NewOfflineQueue(storages.PendingOperationRepository, validator, logger)
	syncSvc := NewClientSyncService(SyncDependencies{
		Reader:    reader,
		Writer:    writer,
		WriteBack: cfg.Host.WriteBack,
		Remote:    remote,
		Location:  location,
		Queue:     queue,
		State:     state,
		Validator: validator,
		Retry:     retry.New(retryPolicy(cfg.Retry), syncClassifier),
		DeviceID:  deviceID,
	}, logger)

	return &ClientServices{
		AppInfoService: appInfo,
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, cfg.Workers.SyncInterval, cfg.Workers.AutoSync, logger),
		Queue:          queue,
		State:          state,
		DeviceID:       deviceID,
	}, nil
}

func retryPolicy(cfg config.ClientRetry) retry.Policy {
	policy := retry.DefaultPolicy()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.InitialDelay > 0 {
		policy.InitialDelay = cfg.InitialDelay
	}
	if cfg.MaxDelay > 0 {
		policy.MaxDelay = cfg.MaxDelay
	}
	if cfg.BackoffFactor >= 1 {
		policy.BackoffFactor = cfg.BackoffFactor
	}
	policy.Jitter = cfg.Jitter
	return policy
}
