package mock

import "SWJTUCTF/models"

// Challenges 训练题目种子数据
func Challenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:       1,
			Title:    "Easy SQL Injection",
			Category: models.CategoryWeb,
			Description: "### Description\n\nThis is a basic SQL injection challenge. Your goal is to bypass the login page.\n\n" +
				"```sql\nSELECT * FROM users WHERE username = '$username' AND password = '$password'\n```\n\n### Goal\n\nFind the flag in the database.\n",
			Points:         100,
			SolvedCount:    120,
			Difficulty:     models.DifficultyEasy,
			Status:         models.ChallengeSolved,
			ContainerState: models.ContainerStateRunning,
			ContainerInfo: &models.ContainerInfo{
				IP:       "192.168.1.100",
				Port:     8080,
				TimeLeft: "00:58:20",
			},
			DockerImage: "swjtuctf/easy-sqli:latest",
			DockerPort:  80,
		},
		{
			ID:       2,
			Title:    "Buffer Overflow Level 1",
			Category: models.CategoryPwn,
			Description: "### Description\n\nA simple buffer overflow vulnerability. Can you overwrite the return address?\n\n" +
				"```c\nvoid vulnerable_function(char *input) {\n    char buffer[64];\n    strcpy(buffer, input);\n}\n```\n",
			Points:         200,
			SolvedCount:    45,
			Difficulty:     models.DifficultyMedium,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
			DockerImage:    "swjtuctf/bof-level1:latest",
			DockerPort:     9999,
		},
		{
			ID:             3,
			Title:          "RSA 101",
			Category:       models.CategoryCrypto,
			Description:    "Decrypt the message using the given N and e.",
			Points:         150,
			SolvedCount:    80,
			Difficulty:     models.DifficultyEasy,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
		},
		{
			ID:             4,
			Title:          "Hidden Image",
			Category:       models.CategoryMisc,
			Description:    "Find the hidden flag in the image metadata.",
			Points:         100,
			SolvedCount:    200,
			Difficulty:     models.DifficultyEasy,
			Status:         models.ChallengeSolved,
			ContainerState: models.ContainerStateIdle,
		},
		{
			ID:             5,
			Title:          "Advanced XSS",
			Category:       models.CategoryWeb,
			Description:    "Bypass the CSP to execute your JavaScript.",
			Points:         300,
			SolvedCount:    15,
			Difficulty:     models.DifficultyHard,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateLoading,
			DockerImage:    "swjtuctf/advanced-xss:latest",
			DockerPort:     80,
		},
		{
			ID:             6,
			Title:          "Kernel Exploit",
			Category:       models.CategoryPwn,
			Description:    "Exploit a race condition in the kernel module.",
			Points:         500,
			SolvedCount:    5,
			Difficulty:     models.DifficultyHard,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
			DockerImage:    "swjtuctf/kernel-race:latest",
			DockerPort:     9999,
		},
		{
			ID:             7,
			Title:          "Easy Reverse",
			Category:       models.CategoryReverse,
			Description:    "Find the password hidden in the binary.",
			Points:         100,
			SolvedCount:    150,
			Difficulty:     models.DifficultyEasy,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
		},
		{
			ID:             8,
			Title:          "Android Backup",
			Category:       models.CategoryMobile,
			Description:    "Extract data from the Android backup file.",
			Points:         200,
			SolvedCount:    60,
			Difficulty:     models.DifficultyMedium,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
		},
		{
			ID:             9,
			Title:          "Smart Contract Vulnerability",
			Category:       models.CategoryBlockchain,
			Description:    "Exploit the reentrancy bug in the smart contract.",
			Points:         400,
			SolvedCount:    20,
			Difficulty:     models.DifficultyHard,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
			DockerImage:    "swjtuctf/reentrancy-chain:latest",
			DockerPort:     8545,
		},
		{
			ID:             10,
			Title:          "Adversarial Example",
			Category:       models.CategoryAI,
			Description:    "Create an image that fools the neural network.",
			Points:         350,
			SolvedCount:    10,
			Difficulty:     models.DifficultyMedium,
			Status:         models.ChallengeUnsolved,
			ContainerState: models.ContainerStateIdle,
		},
	}
}
