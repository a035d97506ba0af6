package explorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
)

const operationDayBlocks = "day_blocks"

// DayBlocks lists the blocks mined on the day starting at day, newest first as served.
func (c *Client) DayBlocks(ctx context.Context, day time.Time) ([]model.BriefBlock, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe(operationDayBlocks, err, start)
	}()

	resource := fmt.Sprintf("/blocks/%d", day.UnixMilli())
	body, err := c.get(ctx, operationDayBlocks, resource, url.Values{"format": {"json"}})
	if err != nil {
		return nil, err
	}

	dtos, err := decodeDayBlocks(body)
	if err != nil {
		err = &DecodeError{Resource: resource, Err: err}
		return nil, err
	}

	blocks := make([]model.BriefBlock, 0, len(dtos))
	for _, dto := range dtos {
		block, convErr := dto.toModel(day)
		if convErr != nil {
			err = &DecodeError{Resource: resource, Err: convErr}
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func decodeDayBlocks(body []byte) ([]briefBlockDTO, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Blocks []briefBlockDTO `json:"blocks"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Blocks, nil
	}

	var blocks []briefBlockDTO
	if err := json.Unmarshal(trimmed, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
