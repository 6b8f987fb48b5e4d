package dynamorepo

import (
	"time"

	"github.com/mrled/suns/symaxis/internal/model"
)

// DynamoDTO represents the persistence layer DTO for DynamoDB
// It maps the domain model to DynamoDB's key structure where:
// - PK (partition key) is the check ID
type DynamoDTO struct {
	PK          string     `dynamodbav:"pk"` // Partition Key - maps from ID
	Label       string     `dynamodbav:"Label,omitempty"`
	Points      []PointDTO `dynamodbav:"Points"`
	Symmetrical bool       `dynamodbav:"Symmetrical"`
	Axis        *int       `dynamodbav:"Axis,omitempty"`
	CheckTime   time.Time  `dynamodbav:"CheckTime"`
	Rev         int64      `dynamodbav:"Rev"` // Monotonically increasing revision number
}

// PointDTO is a point as stored in a DynamoDB list
type PointDTO struct {
	X int `dynamodbav:"x"`
	Y int `dynamodbav:"y"`
}

// ToDomain converts a DynamoDTO to a domain model CheckRecord
func (dto *DynamoDTO) ToDomain() *model.CheckRecord {
	points := make([]model.Point, len(dto.Points))
	for i, p := range dto.Points {
		points[i] = model.Point{X: p.X, Y: p.Y}
	}
	return &model.CheckRecord{
		ID:          dto.PK,
		Label:       dto.Label,
		Points:      points,
		Symmetrical: dto.Symmetrical,
		Axis:        dto.Axis,
		CheckTime:   dto.CheckTime,
		Rev:         dto.Rev,
	}
}

// FromDomain creates a DynamoDTO from a domain model CheckRecord
func FromDomain(record *model.CheckRecord) *DynamoDTO {
	points := make([]PointDTO, len(record.Points))
	for i, p := range record.Points {
		points[i] = PointDTO{X: p.X, Y: p.Y}
	}
	return &DynamoDTO{
		PK:          record.ID,
		Label:       record.Label,
		Points:      points,
		Symmetrical: record.Symmetrical,
		Axis:        record.Axis,
		CheckTime:   record.CheckTime,
		Rev:         record.Rev,
	}
}

// ToDomainList converts a slice of DynamoDTOs to domain model CheckRecords
func ToDomainList(dtos []*DynamoDTO) []*model.CheckRecord {
	records := make([]*model.CheckRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = dto.ToDomain()
	}
	return records
}
