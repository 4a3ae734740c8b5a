package database

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS departments (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	manager_id BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS employees (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	position TEXT NOT NULL,
	department_id BIGINT NOT NULL REFERENCES departments(id),
	date_of_joining DATE NOT NULL,
	email_address TEXT NOT NULL,
	phone_number TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attendances (
	id BIGSERIAL PRIMARY KEY,
	employee_id BIGINT NOT NULL REFERENCES employees(id),
	date DATE NOT NULL,
	in_time TIMESTAMPTZ,
	out_time TIMESTAMPTZ,
	status TEXT NOT NULL,
	is_late BOOLEAN NOT NULL DEFAULT FALSE,
	UNIQUE (employee_id, date)
);

CREATE TABLE IF NOT EXISTS leave_requests (
	id BIGSERIAL PRIMARY KEY,
	employee_id BIGINT NOT NULL REFERENCES employees(id),
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	reason TEXT NOT NULL,
	leave_type TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'Pending'
);

CREATE TABLE IF NOT EXISTS salaries (
	id BIGSERIAL PRIMARY KEY,
	employee_id BIGINT NOT NULL REFERENCES employees(id),
	month TEXT NOT NULL,
	basic_salary NUMERIC(12,2) NOT NULL,
	deductions NUMERIC(12,2) NOT NULL DEFAULT 0,
	bonuses NUMERIC(12,2) NOT NULL DEFAULT 0,
	net_salary NUMERIC(12,2) NOT NULL
);
`

// EnsureSchema creates the tables on startup when they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Exec(ctx, schema)
	return err
}
