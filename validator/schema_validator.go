package validator

import (
	"marketfeed/model"

	"github.com/Oudwins/zog"
)

var SymbolShape = zog.Shape{
	"Symbol": zog.String().Trim().Min(1).Max(24).Required(),
}

var HistoryTokensShape = zog.Shape{
	"Period":   zog.String().Trim().Min(2).Max(3).Required(),
	"Interval": zog.String().Trim().Min(2).Max(3).Required(),
}

var EntryNameShape = zog.Shape{
	"Name": zog.String().Trim().Max(64),
}

// HistoryTokensTest rejects period/interval values outside the supported
// token sets, pointing the issue at the offending field.
func HistoryTokensTest(dataPtr any, ctx zog.Ctx) bool {
	req, ok := dataPtr.(*model.HistoryRequest)
	if !ok {
		return true
	}

	valid := true
	if _, err := model.ParsePeriod(req.Period); err != nil {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    []string{"period"},
			Message: "period must be one of 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y",
		})
		valid = false
	}
	if _, err := model.ParseInterval(req.Interval); err != nil {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    []string{"interval"},
			Message: "interval must be one of 1m, 5m, 15m, 1h, 1d",
		})
		valid = false
	}
	return valid
}
