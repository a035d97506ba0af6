package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
)

const operationRawBlock = "raw_block"

// Block fetches the block with the given hash including its transactions.
func (c *Client) Block(ctx context.Context, hash string) (*model.DetailedBlock, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe(operationRawBlock, err, start)
	}()

	resource := "/rawblock/" + hash
	body, err := c.get(ctx, operationRawBlock, resource, nil)
	if err != nil {
		return nil, err
	}

	var dto rawBlockDTO
	if err = json.Unmarshal(body, &dto); err != nil {
		err = &DecodeError{Resource: resource, Err: err}
		return nil, err
	}
	if !strings.EqualFold(dto.Hash, hash) {
		err = &DecodeError{Resource: resource, Err: fmt.Errorf("response hash %q does not match", dto.Hash)}
		return nil, err
	}

	block, err := dto.toModel()
	if err != nil {
		err = &DecodeError{Resource: resource, Err: err}
		return nil, err
	}
	return block, nil
}
