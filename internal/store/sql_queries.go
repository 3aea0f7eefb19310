package store

import (
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (name, email, role, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, role, password_hash, last_login_at, created_at, updated_at
    FROM users
    WHERE email = $1 AND deleted_at IS NULL;`

	findUserByID = `SELECT id, name, email, role, password_hash, last_login_at, created_at, updated_at
    FROM users
    WHERE id = $1 AND deleted_at IS NULL;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	lockUserForUpdate = `SELECT id FROM users WHERE id = $1 AND deleted_at IS NULL FOR UPDATE;`

	deleteUserTokens = `DELETE FROM personal_access_tokens WHERE user_id = $1;`

	insertToken = `INSERT INTO personal_access_tokens (id, user_id, name, abilities, expires_at, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	updateUserLastLogin = `UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2;`

	findToken = `SELECT id, user_id, name, abilities, expires_at, created_at
    FROM personal_access_tokens
    WHERE id = $1;`

	deleteExpiredTokens = `DELETE FROM personal_access_tokens WHERE expires_at <= $1;`

	createShipment = `INSERT INTO shipments (
            tracking_number,
            sender_name,
            receiver_name,
            origin_address,
            destination_address,
            origin_latitude,
            origin_longitude,
            destination_latitude,
            destination_longitude,
            status,
            created_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at;`

	updateShipmentStatus = `UPDATE shipments
        SET status = $1, updated_at = now()
        WHERE id = $2 AND deleted_at IS NULL
        RETURNING id, tracking_number, sender_name, receiver_name, origin_address, destination_address,
            origin_latitude, origin_longitude, destination_latitude, destination_longitude,
            status, created_by, created_at, updated_at;`

	enqueueAuditJob = `INSERT INTO audit_jobs (action, user_id, ip_address, metadata, not_before)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id;`

	insertSystemLog = `INSERT INTO system_logs (action, user_id, ip_address, metadata, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        RETURNING id;`

	deleteAuditJob = `DELETE FROM audit_jobs WHERE id = $1;`

	rescheduleAuditJob = `UPDATE audit_jobs
        SET attempts = attempts + 1, not_before = $1, last_error = $2
        WHERE id = $3;`
)

var shipmentColumns = []string{
	"s.id",
	"s.tracking_number",
	"s.sender_name",
	"s.receiver_name",
	"s.origin_address",
	"s.destination_address",
	"s.origin_latitude",
	"s.origin_longitude",
	"s.destination_latitude",
	"s.destination_longitude",
	"s.status",
	"s.created_by",
	"s.created_at",
	"s.updated_at",
}

var ownerColumns = []string{
	"u.id",
	"u.name",
	"u.email",
	"u.role",
	"u.last_login_at",
	"u.created_at",
}

var systemLogColumns = []string{
	"l.id",
	"l.action",
	"l.user_id",
	"l.ip_address",
	"l.metadata",
	"l.created_at",
	"l.updated_at",
	"u.id",
	"u.name",
	"u.email",
	"u.role",
	"u.last_login_at",
	"u.created_at",
}

var auditJobColumns = []string{
	"id",
	"action",
	"user_id",
	"ip_address",
	"metadata",
	"not_before",
	"attempts",
	"created_at",
}

// shipmentWhere applies the filter conditions shared by the list and count
// queries.
func shipmentWhere(b sq.SelectBuilder, filter models.ShipmentFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"s.deleted_at": nil})

	if filter.OwnerID > 0 {
		b = b.Where(sq.Eq{"s.created_by": filter.OwnerID})
	}

	if filter.Status != "" {
		b = b.Where(sq.Eq{"s.status": string(filter.Status)})
	}

	return b
}

// buildListShipmentsQuery selects one page of shipments, newest first.
// When filter.WithOwner is set the owning user's columns follow the
// shipment columns.
func buildListShipmentsQuery(filter models.ShipmentFilter) (string, []any, error) {
	columns := shipmentColumns
	if filter.WithOwner {
		columns = append(append([]string{}, shipmentColumns...), ownerColumns...)
	}

	b := psql.Select(columns...).From("shipments s")
	if filter.WithOwner {
		b = b.Join("users u ON u.id = s.created_by")
	}

	b = shipmentWhere(b, filter).
		OrderBy("s.created_at DESC", "s.id DESC")

	page := models.NewPagination(filter.Page, filter.Limit, 0)
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit).Offset(page.Offset())
	}

	return b.ToSql()
}

func buildCountShipmentsQuery(filter models.ShipmentFilter) (string, []any, error) {
	return shipmentWhere(psql.Select("COUNT(*)").From("shipments s"), filter).ToSql()
}

func buildFindShipmentQuery(column string, value any) (string, []any, error) {
	return psql.Select(shipmentColumns...).
		From("shipments s").
		Where(sq.Eq{"s." + column: value}).
		Where(sq.Eq{"s.deleted_at": nil}).
		ToSql()
}

func buildListSystemLogsQuery(filter models.LogFilter) (string, []any, error) {
	b := psql.Select(systemLogColumns...).
		From("system_logs l").
		LeftJoin("users u ON u.id = l.user_id").
		Where(sq.Eq{"l.deleted_at": nil}).
		OrderBy("l.created_at DESC", "l.id DESC")

	page := models.NewPagination(filter.Page, filter.Limit, 0)
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit).Offset(page.Offset())
	}

	return b.ToSql()
}

func buildCountSystemLogsQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("system_logs l").
		Where(sq.Eq{"l.deleted_at": nil}).
		ToSql()
}

func buildDueAuditJobsQuery(now time.Time, limit uint64) (string, []any, error) {
	return psql.Select(auditJobColumns...).
		From("audit_jobs").
		Where(sq.LtOrEq{"not_before": now}).
		OrderBy("not_before", "id").
		Limit(limit).
		ToSql()
}
