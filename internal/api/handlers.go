package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naaricare/riskapi/internal/menopause"
	"github.com/naaricare/riskapi/internal/pcos"
)

type handlers struct {
	pcos      *pcos.Engine
	menopause *menopause.Engine
	store     Store
}

// Request fields are pointers so that explicit zero values (false, 0) bind
// while genuinely missing fields fail validation.
type pcosRequest struct {
	Age             *float64 `json:"age" binding:"required"`
	Weight          *float64 `json:"weight" binding:"required"`
	BMI             *float64 `json:"bmi" binding:"required"`
	CycleRegular    *bool    `json:"cycleRegular" binding:"required"`
	CycleLength     *float64 `json:"cycleLength" binding:"required"`
	WeightGain      *bool    `json:"weightGain" binding:"required"`
	HairGrowth      *bool    `json:"hairGrowth" binding:"required"`
	SkinDarkening   *bool    `json:"skinDarkening" binding:"required"`
	HairLoss        *bool    `json:"hairLoss" binding:"required"`
	Pimples         *bool    `json:"pimples" binding:"required"`
	FastFood        *bool    `json:"fastFood" binding:"required"`
	RegularExercise *bool    `json:"regularExercise" binding:"required"`
	FollicleLeft    *float64 `json:"follicleLeft" binding:"required"`
	FollicleRight   *float64 `json:"follicleRight" binding:"required"`
	Endometrium     *float64 `json:"endometrium" binding:"required"`
}

func (r *pcosRequest) input() pcos.Input {
	return pcos.Input{
		Age:             *r.Age,
		Weight:          *r.Weight,
		BMI:             *r.BMI,
		CycleRegular:    *r.CycleRegular,
		CycleLength:     *r.CycleLength,
		WeightGain:      *r.WeightGain,
		HairGrowth:      *r.HairGrowth,
		SkinDarkening:   *r.SkinDarkening,
		HairLoss:        *r.HairLoss,
		Pimples:         *r.Pimples,
		FastFood:        *r.FastFood,
		RegularExercise: *r.RegularExercise,
		FollicleLeft:    *r.FollicleLeft,
		FollicleRight:   *r.FollicleRight,
		Endometrium:     *r.Endometrium,
	}
}

type menopauseRequest struct {
	Age              *int     `json:"age" binding:"required"`
	EstrogenLevel    *float64 `json:"estrogen_level" binding:"required"`
	FSHLevel         *float64 `json:"fsh_level" binding:"required"`
	YearsSincePeriod *float64 `json:"years_since_last_period" binding:"required"`
	IrregularPeriods *int     `json:"irregular_periods" binding:"required"`
	MissedPeriods    *int     `json:"missed_periods" binding:"required"`
	HotFlashes       *int     `json:"hot_flashes" binding:"required"`
	NightSweats      *int     `json:"night_sweats" binding:"required"`
	SleepProblems    *int     `json:"sleep_problems" binding:"required"`
	VaginalDryness   *int     `json:"vaginal_dryness" binding:"required"`
	JointPain        *int     `json:"joint_pain" binding:"required"`
}

func (r *menopauseRequest) input() menopause.Input {
	return menopause.Input{
		Age:              *r.Age,
		EstrogenLevel:    *r.EstrogenLevel,
		FSHLevel:         *r.FSHLevel,
		YearsSincePeriod: *r.YearsSincePeriod,
		IrregularPeriods: *r.IrregularPeriods,
		MissedPeriods:    *r.MissedPeriods,
		HotFlashes:       *r.HotFlashes,
		NightSweats:      *r.NightSweats,
		SleepProblems:    *r.SleepProblems,
		VaginalDryness:   *r.VaginalDryness,
		JointPain:        *r.JointPain,
	}
}

func (h *handlers) predictPCOS(c *gin.Context) {
	var req pcosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	result, err := h.pcos.Assess(req.input())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assessment failed"})
		log.Printf("pcos assessment error: %v", err)
		return
	}

	h.record(c, "pcos", strconv.FormatBool(result.HasPCOS), result.RiskPercentage)
	c.JSON(http.StatusOK, result)
}

func (h *handlers) predictMenopause(c *gin.Context) {
	var req menopauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	result, err := h.menopause.Assess(req.input())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assessment failed"})
		log.Printf("menopause assessment error: %v", err)
		return
	}

	h.record(c, "menopause", result.Stage, result.RiskPercentage)
	c.JSON(http.StatusOK, result)
}

// record logs the prediction to the audit store. Best effort: a failed
// insert never changes the response already computed for the caller.
func (h *handlers) record(c *gin.Context, endpoint, verdict string, risk int) {
	if h.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Record(ctx, endpoint, verdict, risk); err != nil {
		log.Printf("audit record failed: %v", err)
	}
}
