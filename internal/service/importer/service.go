package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/motorph/payroll-backend-go/internal/domain/attendance"
	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/domain/importer"
	"github.com/motorph/payroll-backend-go/internal/pkg/database"
	"github.com/motorph/payroll-backend-go/internal/pkg/storage"
	"github.com/motorph/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

// Spreadsheet column headers as the HR exports name them.
const (
	colEmployeeID     = "Employee #"
	colLastName       = "Last Name"
	colFirstName      = "First Name"
	colBirthday       = "Birthday"
	colAddress        = "Address"
	colPhoneNumber    = "Phone Number"
	colSSS            = "SSS #"
	colPhilhealth     = "Philhealth #"
	colTIN            = "TIN #"
	colPagibig        = "Pag-ibig #"
	colStatus         = "Status"
	colPosition       = "Position"
	colSupervisor     = "Immediate Supervisor"
	colBasicSalary    = "Basic Salary"
	colRiceSubsidy    = "Rice Subsidy"
	colPhoneAllowance = "Phone Allowance"
	colClothing       = "Clothing Allowance"
	colSemiMonthly    = "Gross Semi-monthly Rate"
	colHourlyRate     = "Hourly Rate"
	colDate           = "Date"
	colLogIn          = "Log In"
	colLogOut         = "Log Out"
)

// excelEpochOffsetDays converts an Excel serial date to a Unix day count.
const excelEpochOffsetDays = 25569

type ImportServiceImpl struct {
	db              *database.DB
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	fileStorage     storage.FileStorage
	defaultPassword string
	batchSize       int
	logger          *slog.Logger
}

func NewImportService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	fileStorage storage.FileStorage,
	defaultPassword string,
	batchSize int,
	logger *slog.Logger,
) importer.ImportService {
	return &ImportServiceImpl{
		db:              db,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		fileStorage:     fileStorage,
		defaultPassword: defaultPassword,
		batchSize:       batchSize,
		logger:          logger,
	}
}

// readSheet loads the first sheet and returns its rows keyed by the
// header row. Fails only when the file itself is unusable.
func readSheet(data []byte) ([]map[string]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, importer.ErrBadFile
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, importer.ErrNoSheet
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, importer.ErrNoSheet
	}
	if len(rows) < 1 {
		return nil, importer.ErrNoSheet
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// parseBoundaryDate accepts either an M/D/YYYY string (single digits
// tolerated) or an Excel serial day number.
func parseBoundaryDate(value string) (time.Time, bool) {
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		unix := int64((serial - excelEpochOffsetDays) * 86400)
		t := time.Unix(unix, 0).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// parseDayFraction accepts a serial time fraction ("0.25") or an HH:MM
// clock string and returns the fraction-of-day value.
func parseDayFraction(value string) *float64 {
	if value == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		if f < 0 || f >= 1 {
			return nil
		}
		return &f
	}

	if t, err := time.Parse("15:04", value); err == nil {
		f := (float64(t.Hour())*60 + float64(t.Minute())) / (24 * 60)
		return &f
	}

	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// stripDecimalTail drops the fractional part Excel adds to numeric id
// columns ("1820126735.0" -> "1820126735").
func stripDecimalTail(value string) *string {
	if value == "" {
		return nil
	}
	head := strings.SplitN(value, ".", 2)[0]
	return &head
}

func parseMoney(value string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return decimal.Zero
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

func (s *ImportServiceImpl) archive(ctx context.Context, kind, filename string, data []byte) {
	name := fmt.Sprintf("imports/%s/%s-%s", kind, time.Now().UTC().Format("20060102T150405"), filepath.Base(filename))
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), name); err != nil {
		s.logger.Warn("failed to archive import file", "file", filename, "error", err)
	}
}

// ImportEmployees implements importer.ImportService.
func (s *ImportServiceImpl) ImportEmployees(ctx context.Context, file io.Reader, filename string) (importer.ImportResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return importer.ImportResult{Error: err.Error()}, importer.ErrBadFile
	}

	records, err := readSheet(data)
	if err != nil {
		return importer.ImportResult{Error: err.Error()}, err
	}

	// One hash for the whole sheet; every imported account starts from
	// the same default password.
	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return importer.ImportResult{Error: err.Error()}, err
	}

	runID := uuid.NewString()
	added, skipped := 0, 0

	for _, record := range records {
		if record[colEmployeeID] == "" {
			skipped++
			continue
		}

		var birthday *time.Time
		if b := record[colBirthday]; b != "" {
			if parsed, ok := parseBoundaryDate(b); ok {
				birthday = &parsed
			}
		}

		emp := employee.Employee{
			EmployeeID:           record[colEmployeeID],
			LastName:             record[colLastName],
			FirstName:            record[colFirstName],
			Birthday:             birthday,
			Address:              optional(record[colAddress]),
			PhoneNumber:          optional(record[colPhoneNumber]),
			SSSNumber:            optional(record[colSSS]),
			PhilhealthNumber:     stripDecimalTail(record[colPhilhealth]),
			TINNumber:            optional(record[colTIN]),
			PagibigNumber:        stripDecimalTail(record[colPagibig]),
			Status:               optional(record[colStatus]),
			Position:             optional(record[colPosition]),
			ImmediateSupervisor:  optional(record[colSupervisor]),
			BasicSalary:          parseMoney(record[colBasicSalary]),
			RiceSubsidy:          parseMoney(record[colRiceSubsidy]),
			PhoneAllowance:       parseMoney(record[colPhoneAllowance]),
			ClothingAllowance:    parseMoney(record[colClothing]),
			GrossSemiMonthlyRate: parseMoney(record[colSemiMonthly]),
			HourlyRate:           parseMoney(record[colHourlyRate]),
			Username:             record[colEmployeeID],
			PasswordHash:         string(hash),
		}

		inserted, err := s.employeeRepo.CreateIgnore(ctx, emp)
		if err != nil {
			s.logger.Warn("employee row failed", "import", runID, "employee_id", emp.EmployeeID, "error", err)
			skipped++
			continue
		}
		if inserted {
			added++
		}
	}

	s.archive(ctx, "employees", filename, data)
	s.logger.Info("employee import finished", "import", runID, "added", added, "skipped", skipped)

	return importer.ImportResult{Success: true, Added: added, Skipped: skipped}, nil
}

// ImportAttendance implements importer.ImportService. Rows are written
// in bounded transactional batches; a failed batch is rolled back and
// logged while earlier batches stay committed and the import moves on.
func (s *ImportServiceImpl) ImportAttendance(ctx context.Context, file io.Reader, filename string) (importer.ImportResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return importer.ImportResult{Error: err.Error()}, importer.ErrBadFile
	}

	records, err := readSheet(data)
	if err != nil {
		return importer.ImportResult{Error: err.Error()}, err
	}

	runID := uuid.NewString()
	added, skipped := 0, 0
	batch := make([]attendance.Attendance, 0, s.batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			for _, att := range batch {
				if err := s.attendanceRepo.Upsert(txCtx, att); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.logger.Warn("attendance batch failed", "import", runID, "rows", len(batch), "error", err)
			skipped += len(batch)
		} else {
			added += len(batch)
		}
		batch = batch[:0]
	}

	for _, record := range records {
		// Abandoned import: committed batches stay valid, stop cleanly.
		if ctx.Err() != nil {
			break
		}

		if record[colEmployeeID] == "" || record[colLastName] == "" || record[colFirstName] == "" ||
			record[colDate] == "" || record[colLogIn] == "" || record[colLogOut] == "" {
			skipped++
			continue
		}

		date, ok := parseBoundaryDate(record[colDate])
		if !ok {
			s.logger.Debug("unparseable date", "import", runID, "value", record[colDate])
			skipped++
			continue
		}

		batch = append(batch, attendance.Attendance{
			EmployeeID: record[colEmployeeID],
			Date:       date,
			LogIn:      parseDayFraction(record[colLogIn]),
			LogOut:     parseDayFraction(record[colLogOut]),
		})

		if len(batch) >= s.batchSize {
			flush()
		}
	}
	flush()

	if err := ctx.Err(); err != nil {
		s.logger.Info("attendance import abandoned", "import", runID, "added", added)
		return importer.ImportResult{Success: true, Added: added, Skipped: skipped}, nil
	}

	s.archive(ctx, "attendance", filename, data)
	s.logger.Info("attendance import finished", "import", runID, "added", added, "skipped", skipped)

	return importer.ImportResult{Success: true, Added: added, Skipped: skipped}, nil
}
