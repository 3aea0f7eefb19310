// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListShipmentsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.ShipmentFilter
		wantArgs   []any
		checkQuery func(t *testing.T, query string)
	}{
		{
			name:     "owner and status filters",
			filter:   models.ShipmentFilter{OwnerID: 42, Status: models.StatusDelivered, Page: 1, Limit: 10},
			wantArgs: []any{int64(42), "delivered"},
			checkQuery: func(t *testing.T, query string) {
				assert.Contains(t, query, "FROM shipments s")
				assert.Contains(t, query, "s.deleted_at IS NULL")
				assert.Contains(t, query, "s.created_by = $1")
				assert.Contains(t, query, "s.status = $2")
				assert.Contains(t, query, "ORDER BY s.created_at DESC, s.id DESC")
				assert.Contains(t, query, "LIMIT 10 OFFSET 0")
				assert.NotContains(t, query, "JOIN")
			},
		},
		{
			name:     "every shipment with owner, third page",
			filter:   models.ShipmentFilter{Page: 3, Limit: 5, WithOwner: true},
			wantArgs: nil,
			checkQuery: func(t *testing.T, query string) {
				assert.Contains(t, query, "JOIN users u ON u.id = s.created_by")
				assert.Contains(t, query, "u.email")
				assert.Contains(t, query, "LIMIT 5 OFFSET 10")
				assert.NotContains(t, query, "s.created_by =")
			},
		},
		{
			name:     "no limit selects everything",
			filter:   models.ShipmentFilter{},
			wantArgs: nil,
			checkQuery: func(t *testing.T, query string) {
				assert.NotContains(t, query, "LIMIT")
				assert.NotContains(t, query, "OFFSET")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListShipmentsQuery(tt.filter)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantArgs), len(args))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], args[i])
			}
			tt.checkQuery(t, query)
		})
	}
}

func Test_buildListShipmentsQuery_DoesNotMutateColumns(t *testing.T) {
	before := len(shipmentColumns)

	_, _, err := buildListShipmentsQuery(models.ShipmentFilter{WithOwner: true, Limit: 1})
	require.NoError(t, err)

	assert.Len(t, shipmentColumns, before)
}

func Test_buildCountShipmentsQuery(t *testing.T) {
	query, args, err := buildCountShipmentsQuery(models.ShipmentFilter{OwnerID: 7, Page: 2, Limit: 10, WithOwner: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "SELECT COUNT(*) FROM shipments s"))
	assert.Contains(t, query, "s.created_by = $1")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "JOIN")
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildFindShipmentQuery(t *testing.T) {
	query, args, err := buildFindShipmentQuery("tracking_number", "tn-1")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE s.tracking_number = $1 AND s.deleted_at IS NULL")
	assert.Equal(t, []any{"tn-1"}, args)
	for _, col := range shipmentColumns {
		assert.Contains(t, query, col)
	}
}

func Test_buildListSystemLogsQuery(t *testing.T) {
	query, args, err := buildListSystemLogsQuery(models.LogFilter{Page: 2, Limit: 20})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM system_logs l LEFT JOIN users u ON u.id = l.user_id")
	assert.Contains(t, query, "l.deleted_at IS NULL")
	assert.Contains(t, query, "ORDER BY l.created_at DESC, l.id DESC")
	assert.Contains(t, query, "LIMIT 20 OFFSET 20")
	assert.Empty(t, args)
}

func Test_buildCountSystemLogsQuery(t *testing.T) {
	query, args, err := buildCountSystemLogsQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM system_logs l WHERE l.deleted_at IS NULL", query)
	assert.Empty(t, args)
}

func Test_buildDueAuditJobsQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildDueAuditJobsQuery(now, 25)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM audit_jobs WHERE not_before <= $1")
	assert.Contains(t, query, "ORDER BY not_before, id")
	assert.Contains(t, query, "LIMIT 25")
	assert.Equal(t, []any{now}, args)
}
