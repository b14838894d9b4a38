package bootstrap

import (
	"placement-backend/internal/models"
	"placement-backend/internal/store"
)

// DefaultData returns the bundled collections the portal starts from
// when a slot has never been written (first run) or cannot be read.
func DefaultData() store.Defaults {
	return store.Defaults{
		Sites: []models.InternshipSite{
			{
				ID: "1700000000001",
				Name: models.LocalizedText{
					Th: "บริษัท ฮาลาลฟู้ดส์ จำกัด",
					En: "Halal Foods Co., Ltd.",
					Ja: "ハラルフーズ株式会社",
					Zh: "清真食品有限公司",
				},
				Location: models.LocalizedText{
					Th: "กรุงเทพมหานคร",
					En: "Bangkok",
					Ja: "バンコク",
					Zh: "曼谷",
				},
				Description: models.LocalizedText{
					Th: "ผู้ผลิตอาหารฮาลาลส่งออก",
					En: "Halal food manufacturer and exporter",
					Ja: "ハラル食品の製造・輸出企業",
					Zh: "清真食品生产与出口商",
				},
				Position: models.LocalizedText{
					Th: "ผู้ช่วยควบคุมคุณภาพ",
					En: "QA Assistant",
					Ja: "品質管理アシスタント",
					Zh: "质量管理助理",
				},
				Status:    models.SiteStatusActive,
				Major:     models.MajorHalalFood,
				CreatedAt: "2024-01-15T08:00:00Z",
			},
			{
				ID: "1700000000002",
				Name: models.LocalizedText{
					Th: "บริษัท สมาร์ทลอจิสติกส์ จำกัด",
					En: "Smart Logistics Co., Ltd.",
					Ja: "スマートロジスティクス株式会社",
					Zh: "智能物流有限公司",
				},
				Location: models.LocalizedText{
					Th: "จังหวัดสงขลา",
					En: "Songkhla",
					Ja: "ソンクラー県",
					Zh: "宋卡府",
				},
				Description: models.LocalizedText{
					Th: "ผู้ให้บริการขนส่งและคลังสินค้า",
					En: "Transport and warehousing provider",
					Ja: "輸送・倉庫サービス企業",
					Zh: "运输与仓储服务商",
				},
				Position: models.LocalizedText{
					Th: "ผู้ช่วยวางแผนการขนส่ง",
					En: "Logistics Planning Assistant",
					Ja: "物流計画アシスタント",
					Zh: "物流规划助理",
				},
				Status:    models.SiteStatusSeniorVisited,
				Major:     models.MajorLogistics,
				CreatedAt: "2024-02-01T08:00:00Z",
			},
		},
		Statuses: []models.StudentStatusRecord{},
		Schedules: []models.ScheduleEvent{
			{
				ID: "1700000000101",
				Title: models.LocalizedText{
					Th: "วันปฐมนิเทศฝึกงาน",
					En: "Internship Orientation Day",
					Ja: "インターンシップ・オリエンテーション",
					Zh: "实习说明会",
				},
				StartDate: models.LocalizedText{
					Th: "1 มิถุนายน 2567", En: "June 1, 2024",
					Ja: "2024年6月1日", Zh: "2024年6月1日",
				},
				EndDate: models.LocalizedText{
					Th: "1 มิถุนายน 2567", En: "June 1, 2024",
					Ja: "2024年6月1日", Zh: "2024年6月1日",
				},
				RawStart:  "2024-06-01",
				RawEnd:    "2024-06-01",
				Status:    models.ScheduleUpcoming,
				CreatedAt: "2024-03-01T08:00:00Z",
			},
		},
		Forms: []models.DocumentForm{
			{
				ID: "1700000000201",
				Title: models.LocalizedText{
					Th: "แบบฟอร์มขอฝึกงาน",
					En: "Internship Application Form",
					Ja: "インターンシップ申請書",
					Zh: "实习申请表",
				},
				Category: models.FormCategoryApplication,
				URL:      "https://example.ac.th/forms/internship-application.pdf",
			},
		},
		Language: "th",
		Theme:    "light",
	}
}
