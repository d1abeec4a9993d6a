package mock

import "SWJTUCTF/models"

// Contests 比赛种子数据，每次调用返回新的切片
func Contests() []models.Contest {
	return []models.Contest{
		{
			ID:               1,
			Name:             "第八届西南交通大学 CTF 新秀杯",
			Brief:            "面向零基础新生的入门赛，涵盖基础题目。",
			Description:      "# 赛事背景\n\n面向零基础新生的入门赛，涵盖基础 Web / Crypto / Misc 等题目，帮助同学们快速熟悉 CTF 比赛形式。\n\n## 比赛形式\n\n- 赛制：个人赛\n- 题型：Web / Crypto / Misc\n- 评分：动态积分制\n",
			StartTime:        "2025-03-10 19:00",
			EndTime:          "2025-03-10 22:00",
			Status:           models.ContestStatusOngoing,
			ImageURL:         "https://dummyimage.com/640x360/0f172a/38bdf8&text=Newbee+CTF",
			ParticipantCount: 156,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               2,
			Name:             "校内常规训练赛",
			Brief:            "每周一次的校内训练赛，用于巩固日常练习内容。",
			Description:      "# 赛事介绍\n\n每周一次的校内训练赛，用于巩固日常练习内容，题目难度适中，适合有一定基础的同学。\n\n## 适合人群\n\n- 已经完成基础新生赛\n- 希望保持刷题节奏的同学\n",
			StartTime:        "2025-03-15 19:00",
			EndTime:          "2025-03-15 23:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/020617/a5b4fc&text=Weekly+Training",
			CountdownText:    "2天后开始",
			ParticipantCount: 89,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               3,
			Name:             "SWJTU CTF 校赛",
			Brief:            "正式选拔赛，成绩将作为集训队选拔的重要参考。",
			Description:      "# 赛事介绍\n\n正式选拔赛，成绩将作为集训队选拔的重要参考。\n\n## 注意事项\n\n- 比赛全程禁止作弊与共享 Flag\n- 需要独立完成题目\n",
			StartTime:        "2025-02-01 09:00",
			EndTime:          "2025-02-01 17:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/111827/f97316&text=SWJTU+CTF+Final",
			ParticipantCount: 234,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               4,
			Name:             "春季 CTF 挑战赛",
			Brief:            "春季学期大型 CTF 比赛，包含 Web、Crypto、Pwn 等多个方向。",
			Description:      "春季学期大型 CTF 比赛，包含 Web、Crypto、Pwn 等多个方向。",
			StartTime:        "2025-03-20 10:00",
			EndTime:          "2025-03-20 18:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/1e293b/10b981&text=Spring+CTF",
			CountdownText:    "7天后开始",
			ParticipantCount: 201,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               5,
			Name:             "网络安全周 CTF 竞赛",
			Brief:            "配合网络安全宣传周举办的 CTF 竞赛，提升网络安全意识。",
			Description:      "配合网络安全宣传周举办的 CTF 竞赛，提升网络安全意识。",
			StartTime:        "2025-04-15 09:00",
			EndTime:          "2025-04-15 21:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/0f172a/f59e0b&text=Cyber+Security",
			CountdownText:    "33天后开始",
			ParticipantCount: 178,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               6,
			Name:             "CTF 新人训练营",
			Brief:            "面向新手的训练营，提供详细讲解和指导。",
			Description:      "面向新手的训练营，提供详细讲解和指导。",
			StartTime:        "2025-01-15 14:00",
			EndTime:          "2025-01-15 17:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/111827/8b5cf6&text=Training+Camp",
			ParticipantCount: 95,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               7,
			Name:             "CTF 月度挑战",
			Brief:            "每月一次的挑战赛，题目难度适中，适合日常练习。",
			Description:      "每月一次的挑战赛，题目难度适中，适合日常练习。",
			StartTime:        "2025-03-25 19:00",
			EndTime:          "2025-03-25 23:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/020617/06b6d4&text=Monthly+Challenge",
			CountdownText:    "12天后开始",
			ParticipantCount: 142,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               8,
			Name:             "CTF 团队对抗赛",
			Brief:            "团队形式的对抗赛，考验团队协作和综合能力。",
			Description:      "团队形式的对抗赛，考验团队协作和综合能力。",
			StartTime:        "2025-01-20 10:00",
			EndTime:          "2025-01-20 18:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/1e293b/ef4444&text=Team+Battle",
			ParticipantCount: 167,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               9,
			Name:             "Web 安全专项赛",
			Brief:            "专注于 Web 安全漏洞挖掘和利用的专项比赛。",
			Description:      "专注于 Web 安全漏洞挖掘和利用的专项比赛，包含 SQL 注入、XSS、CSRF 等常见漏洞类型。",
			StartTime:        "2025-04-01 09:00",
			EndTime:          "2025-04-01 18:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/0f172a/3b82f6&text=Web+Security",
			CountdownText:    "19天后开始",
			ParticipantCount: 203,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               10,
			Name:             "密码学挑战赛",
			Brief:            "深入密码学算法和协议的挑战赛。",
			Description:      "深入密码学算法和协议的挑战赛，涵盖对称加密、非对称加密、哈希函数等。",
			StartTime:        "2025-01-10 10:00",
			EndTime:          "2025-01-10 16:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/111827/10b981&text=Crypto+Challenge",
			ParticipantCount: 128,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               11,
			Name:             "Pwn 入门训练赛",
			Brief:            "面向初学者的 Pwn 题目训练赛。",
			Description:      "面向初学者的 Pwn 题目训练赛，帮助新手掌握二进制漏洞利用基础。",
			StartTime:        "2025-03-28 19:00",
			EndTime:          "2025-03-28 23:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/020617/f59e0b&text=Pwn+Training",
			CountdownText:    "15天后开始",
			ParticipantCount: 95,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               12,
			Name:             "Misc 综合挑战",
			Brief:            "涵盖多种 Misc 题型的综合挑战赛。",
			Description:      "涵盖多种 Misc 题型的综合挑战赛，包括隐写、取证、编码等。",
			StartTime:        "2025-02-15 14:00",
			EndTime:          "2025-02-15 20:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/1e293b/8b5cf6&text=Misc+Challenge",
			ParticipantCount: 176,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               13,
			Name:             "逆向工程竞赛",
			Brief:            "专注于逆向分析和代码审计的竞赛。",
			Description:      "专注于逆向分析和代码审计的竞赛，考验选手的分析能力和耐心。",
			StartTime:        "2025-04-10 10:00",
			EndTime:          "2025-04-10 18:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/0f172a/ef4444&text=Reverse+Eng",
			CountdownText:    "28天后开始",
			ParticipantCount: 145,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               14,
			Name:             "CTF 春季联赛",
			Brief:            "春季学期大型联赛，多轮次积分制。",
			Description:      "春季学期大型联赛，采用多轮次积分制，最终根据总积分排名。",
			StartTime:        "2025-03-01 09:00",
			EndTime:          "2025-03-01 21:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/111827/06b6d4&text=Spring+League",
			ParticipantCount: 312,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               15,
			Name:             "网络安全知识竞赛",
			Brief:            "理论知识与实践结合的知识竞赛。",
			Description:      "理论知识与实践结合的知识竞赛，包含网络安全法律法规、安全标准等。",
			StartTime:        "2025-04-20 14:00",
			EndTime:          "2025-04-20 18:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/020617/a5b4fc&text=Security+Quiz",
			CountdownText:    "38天后开始",
			ParticipantCount: 267,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               16,
			Name:             "CTF 周末挑战",
			Brief:            "周末举办的快速挑战赛，题目难度适中。",
			Description:      "周末举办的快速挑战赛，题目难度适中，适合日常练习和提升。",
			StartTime:        "2025-03-30 10:00",
			EndTime:          "2025-03-30 16:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/1e293b/f97316&text=Weekend+CTF",
			CountdownText:    "17天后开始",
			ParticipantCount: 189,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               17,
			Name:             "漏洞挖掘实战赛",
			Brief:            "真实环境下的漏洞挖掘实战比赛。",
			Description:      "真实环境下的漏洞挖掘实战比赛，模拟真实的安全测试场景。",
			StartTime:        "2025-02-05 09:00",
			EndTime:          "2025-02-05 17:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/0f172a/10b981&text=Bug+Hunting",
			ParticipantCount: 198,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               18,
			Name:             "CTF 新人赛",
			Brief:            "专门为新人设计的入门级比赛。",
			Description:      "专门为新人设计的入门级比赛，题目简单易懂，帮助新手快速入门。",
			StartTime:        "2025-04-05 19:00",
			EndTime:          "2025-04-05 22:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/111827/3b82f6&text=Newbie+CTF",
			CountdownText:    "23天后开始",
			ParticipantCount: 234,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               19,
			Name:             "高级渗透测试赛",
			Brief:            "面向高级选手的渗透测试挑战赛。",
			Description:      "面向高级选手的渗透测试挑战赛，题目难度较高，考验综合能力。",
			StartTime:        "2025-01-25 10:00",
			EndTime:          "2025-01-25 18:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/020617/ef4444&text=Advanced+PenTest",
			ParticipantCount: 87,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               20,
			Name:             "CTF 月度排位赛",
			Brief:            "每月一次的排位赛，根据排名获得积分。",
			Description:      "每月一次的排位赛，根据排名获得积分，累计积分可参与年度总决赛。",
			StartTime:        "2025-04-25 19:00",
			EndTime:          "2025-04-25 23:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/1e293b/8b5cf6&text=Monthly+Rank",
			CountdownText:    "43天后开始",
			ParticipantCount: 298,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
		{
			ID:               21,
			Name:             "区块链安全挑战",
			Brief:            "专注于区块链和智能合约安全的挑战赛。",
			Description:      "专注于区块链和智能合约安全的挑战赛，包含智能合约审计、区块链协议分析等。",
			StartTime:        "2025-02-10 14:00",
			EndTime:          "2025-02-10 20:00",
			Status:           models.ContestStatusFinished,
			ImageURL:         "https://dummyimage.com/640x360/0f172a/f59e0b&text=Blockchain+Sec",
			ParticipantCount: 156,
			Type:             models.ContestTypeIndividual,
			IsActive:         active(),
		},
		{
			ID:               22,
			Name:             "IoT 安全研究赛",
			Brief:            "物联网设备安全研究和漏洞挖掘比赛。",
			Description:      "物联网设备安全研究和漏洞挖掘比赛，包含嵌入式系统、IoT 协议等。",
			StartTime:        "2025-04-15 10:00",
			EndTime:          "2025-04-15 18:00",
			Status:           models.ContestStatusUpcoming,
			ImageURL:         "https://dummyimage.com/640x360/111827/06b6d4&text=IoT+Security",
			CountdownText:    "33天后开始",
			ParticipantCount: 112,
			Type:             models.ContestTypeTeam,
			IsActive:         active(),
		},
	}
}

func active() *bool {
	v := true
	return &v
}
